package dto

type RecordInput struct {
	StudyMinutes int
}

type RecordOutput struct {
	Date         string
	StudyMinutes int
	Count        int
}

type HistoryInput struct {
	Limit int
}

type CompletionOutput struct {
	Date         string `json:"date"`
	StudyMinutes int    `json:"studyMinutes"`
}

type StatsInput struct {
	Days int
}

type DayTotalOutput struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"totalMinutes"`
}

type StatsOutput struct {
	Days         []DayTotalOutput `json:"days"`
	TotalMinutes int              `json:"totalMinutes"`
	Sessions     int              `json:"sessions"`
	ActiveDays   int              `json:"activeDays"`
	BestDay      DayTotalOutput   `json:"bestDay"`
	Streak       int              `json:"streak"`
}
