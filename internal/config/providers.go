package config

import (
	"github.com/sant0-9/lpg/internal/form"
	"github.com/sant0-9/lpg/internal/prompt"
)

type VariantInfo struct {
	ID          prompt.Variant
	Name        string
	Description string
}

var Variants = []VariantInfo{
	{
		ID:          prompt.VariantCourse,
		Name:        "Modul RPS",
		Description: "Jenjang, gaya penyampaian, kedalaman",
	},
	{
		ID:          prompt.VariantLearningModel,
		Name:        "Model Belajar",
		Description: "Sudut pandang, model pembelajaran, sasaran",
	},
}

type InputModeInfo struct {
	ID          form.InputMode
	Name        string
	Description string
}

var InputModes = []InputModeInfo{
	{
		ID:          form.InputUpload,
		Name:        "Upload",
		Description: "Ekstrak teks RPS dari file .docx",
	},
	{
		ID:          form.InputPaste,
		Name:        "Paste",
		Description: "Tempel isi RPS secara langsung",
	},
	{
		ID:          form.InputManual,
		Name:        "Manual",
		Description: "Tulis topik atau outline sendiri",
	},
}

func GetVariant(id prompt.Variant) *VariantInfo {
	for _, v := range Variants {
		if v.ID == id {
			return &v
		}
	}
	return nil
}

func GetInputMode(id form.InputMode) *InputModeInfo {
	for _, m := range InputModes {
		if m.ID == id {
			return &m
		}
	}
	return nil
}
