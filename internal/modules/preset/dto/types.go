package dto

type PresetOutput struct {
	Label        string `json:"label"`
	StudyMinutes int    `json:"studyMinutes"`
	BreakMinutes int    `json:"breakMinutes"`
}

type ListOutput struct {
	Presets []PresetOutput
	Source  string
}
