package prompt

// Params is everything Assemble needs. It is rebuilt on every interaction
// and passed by value.
type Params struct {
	// Source is the RPS text in context mode or the outline in outline mode.
	Source string
	// Unit is the meeting number; ignored in outline mode.
	Unit  int
	Topic string

	Variant Variant
	Mode    Mode

	// Course variant axes.
	Level    Level
	Delivery Delivery
	Depth    Depth

	// Learning-model variant axes.
	Perspective   Perspective
	LearningModel LearningModel
	Audience      Audience
	Scenario      string

	Length   Length
	Language Language
	Address  Address
	Analogy  Analogy
	Format   Format

	Exercises  bool
	References bool
}

// DefaultParams returns the form defaults with an empty source.
func DefaultParams() Params {
	return Params{
		Unit:          1,
		Variant:       VariantCourse,
		Mode:          ModeContext,
		Level:         LevelS1,
		Delivery:      DeliveryPractical,
		Depth:         DepthIntermediate,
		Perspective:   PerspectiveAcademic,
		LearningModel: ModelLecture,
		Audience:      AudienceFreshmen,
		Length:        Length1500,
		Language:      LanguageMixed,
		Address:       AddressInclusive,
		Analogy:       AnalogyNone,
		Format:        FormatModule,
	}
}

func (p Params) slides() bool {
	return p.Format == FormatPresentation
}
