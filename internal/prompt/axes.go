package prompt

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidValue is returned when a string is not a member of an axis.
var ErrInvalidValue = errors.New("invalid value")

// Level is the education level the material targets.
type Level string

const (
	LevelD3 Level = "D3"
	LevelS1 Level = "S1"
	LevelS2 Level = "S2"
)

// Delivery is the delivery style of the course variant.
type Delivery string

const (
	DeliveryTheoretical Delivery = "Teoretis"
	DeliveryPractical   Delivery = "Praktis"
	DeliveryCaseStudy   Delivery = "Studi Kasus"
)

// Depth maps to a band of Bloom's taxonomy.
type Depth string

const (
	DepthBasic        Depth = "Dasar"
	DepthIntermediate Depth = "Menengah"
	DepthAdvanced     Depth = "Lanjut"
)

// Perspective is the lecturer persona of the learning-model variant.
type Perspective string

const (
	PerspectiveAcademic     Perspective = "Akademis"
	PerspectivePractitioner Perspective = "Praktisi"
	PerspectiveResearcher   Perspective = "Peneliti"
)

// LearningModel is the pedagogical delivery approach.
type LearningModel string

const (
	ModelLecture LearningModel = "Ceramah"
	ModelCase    LearningModel = "Studi Kasus"
	ModelProject LearningModel = "Proyek"
	ModelProblem LearningModel = "Masalah"
)

// UsesScenario reports whether the model interpolates a scenario.
func (m LearningModel) UsesScenario() bool {
	return m == ModelCase || m == ModelProblem
}

// Audience is who will read the material in the learning-model variant.
type Audience string

const (
	AudienceFreshmen     Audience = "Mahasiswa Baru"
	AudienceSenior       Audience = "Mahasiswa Lanjut"
	AudienceProfessional Audience = "Profesional"
)

// Length is the target word count.
type Length string

const (
	Length1000 Length = "1000"
	Length1500 Length = "1500"
	Length2000 Length = "2000"
	Length2500 Length = "2500"
)

// Language is the output language.
type Language string

const (
	LanguageIndonesian Language = "Indonesia"
	LanguageMixed      Language = "Mixed"
)

// Address is how the material addresses the reader.
type Address string

const (
	AddressInclusive Address = "Inklusif"
	AddressFormal    Address = "Formal"
	AddressNeutral   Address = "Netral"
)

// Analogy is how freely analogies are used.
type Analogy string

const (
	AnalogyNone Analogy = "Tidak"
	AnalogyFew  Analogy = "Sedikit"
	AnalogyMany Analogy = "Banyak"
)

// Format is the shape of the generated document.
type Format string

const (
	FormatModule       Format = "Modul"
	FormatBook         Format = "Buku"
	FormatPresentation Format = "Presentasi"
)

// Variant selects which generator the parameters feed.
type Variant string

const (
	VariantCourse        Variant = "course"
	VariantLearningModel Variant = "learning-model"
)

// Mode distinguishes structured-context from manual-outline generation.
type Mode string

const (
	ModeContext Mode = "context"
	ModeOutline Mode = "outline"
)

var (
	levels         = []Level{LevelD3, LevelS1, LevelS2}
	deliveries     = []Delivery{DeliveryTheoretical, DeliveryPractical, DeliveryCaseStudy}
	depths         = []Depth{DepthBasic, DepthIntermediate, DepthAdvanced}
	perspectives   = []Perspective{PerspectiveAcademic, PerspectivePractitioner, PerspectiveResearcher}
	learningModels = []LearningModel{ModelLecture, ModelCase, ModelProject, ModelProblem}
	audiences      = []Audience{AudienceFreshmen, AudienceSenior, AudienceProfessional}
	lengths        = []Length{Length1000, Length1500, Length2000, Length2500}
	languages      = []Language{LanguageIndonesian, LanguageMixed}
	addresses      = []Address{AddressInclusive, AddressFormal, AddressNeutral}
	analogies      = []Analogy{AnalogyNone, AnalogyFew, AnalogyMany}
	formats        = []Format{FormatModule, FormatBook, FormatPresentation}
	variants       = []Variant{VariantCourse, VariantLearningModel}
	modes          = []Mode{ModeContext, ModeOutline}
)

func Levels() []Level                 { return slices.Clone(levels) }
func Deliveries() []Delivery          { return slices.Clone(deliveries) }
func Depths() []Depth                 { return slices.Clone(depths) }
func Perspectives() []Perspective     { return slices.Clone(perspectives) }
func LearningModels() []LearningModel { return slices.Clone(learningModels) }
func Audiences() []Audience           { return slices.Clone(audiences) }
func Lengths() []Length               { return slices.Clone(lengths) }
func Languages() []Language           { return slices.Clone(languages) }
func Addresses() []Address            { return slices.Clone(addresses) }
func Analogies() []Analogy            { return slices.Clone(analogies) }
func Formats() []Format               { return slices.Clone(formats) }
func Variants() []Variant             { return slices.Clone(variants) }
func Modes() []Mode                   { return slices.Clone(modes) }

func parse[T ~string](axis string, values []T, s string) (T, error) {
	v := T(s)
	if !slices.Contains(values, v) {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", axis, s, ErrInvalidValue)
	}
	return v, nil
}

func ParseLevel(s string) (Level, error)       { return parse("level", levels, s) }
func ParseDelivery(s string) (Delivery, error) { return parse("delivery", deliveries, s) }
func ParseDepth(s string) (Depth, error)       { return parse("depth", depths, s) }
func ParsePerspective(s string) (Perspective, error) {
	return parse("perspective", perspectives, s)
}
func ParseLearningModel(s string) (LearningModel, error) {
	return parse("learning model", learningModels, s)
}
func ParseAudience(s string) (Audience, error) { return parse("audience", audiences, s) }
func ParseLength(s string) (Length, error)     { return parse("length", lengths, s) }
func ParseLanguage(s string) (Language, error) { return parse("language", languages, s) }
func ParseAddress(s string) (Address, error)   { return parse("address", addresses, s) }
func ParseAnalogy(s string) (Analogy, error)   { return parse("analogy", analogies, s) }
func ParseFormat(s string) (Format, error)     { return parse("format", formats, s) }
func ParseVariant(s string) (Variant, error)   { return parse("variant", variants, s) }
func ParseMode(s string) (Mode, error)         { return parse("mode", modes, s) }

func decode[T ~string](node *yaml.Node, dst *T, fn func(string) (T, error)) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := fn(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// UnmarshalYAML rejects values outside the axis.
func (v *Level) UnmarshalYAML(n *yaml.Node) error         { return decode(n, v, ParseLevel) }
func (v *Delivery) UnmarshalYAML(n *yaml.Node) error      { return decode(n, v, ParseDelivery) }
func (v *Depth) UnmarshalYAML(n *yaml.Node) error         { return decode(n, v, ParseDepth) }
func (v *Perspective) UnmarshalYAML(n *yaml.Node) error   { return decode(n, v, ParsePerspective) }
func (v *LearningModel) UnmarshalYAML(n *yaml.Node) error { return decode(n, v, ParseLearningModel) }
func (v *Audience) UnmarshalYAML(n *yaml.Node) error      { return decode(n, v, ParseAudience) }
func (v *Length) UnmarshalYAML(n *yaml.Node) error        { return decode(n, v, ParseLength) }
func (v *Language) UnmarshalYAML(n *yaml.Node) error      { return decode(n, v, ParseLanguage) }
func (v *Address) UnmarshalYAML(n *yaml.Node) error       { return decode(n, v, ParseAddress) }
func (v *Analogy) UnmarshalYAML(n *yaml.Node) error       { return decode(n, v, ParseAnalogy) }
func (v *Format) UnmarshalYAML(n *yaml.Node) error        { return decode(n, v, ParseFormat) }
func (v *Variant) UnmarshalYAML(n *yaml.Node) error       { return decode(n, v, ParseVariant) }
func (v *Mode) UnmarshalYAML(n *yaml.Node) error          { return decode(n, v, ParseMode) }

// Next returns the value after v in values, wrapping around. An unknown v
// yields the first value.
func Next[T comparable](values []T, v T) T {
	i := slices.Index(values, v)
	return values[(i+1)%len(values)]
}

// Prev returns the value before v in values, wrapping around.
func Prev[T comparable](values []T, v T) T {
	i := slices.Index(values, v)
	if i <= 0 {
		return values[len(values)-1]
	}
	return values[i-1]
}
