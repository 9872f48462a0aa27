package out

import (
	"context"

	"sabibi/internal/modules/completion/dto"
	completionin "sabibi/internal/modules/completion/port/in"
	timerout "sabibi/internal/modules/timer/port/out"
)

type CompletionRecorder struct {
	completions completionin.Usecase
}

func NewCompletionRecorder(completions completionin.Usecase) timerout.Recorder {
	return &CompletionRecorder{completions: completions}
}

func (a *CompletionRecorder) RecordStudy(ctx context.Context, studyMinutes int) error {
	_, err := a.completions.Record(ctx, dto.RecordInput{StudyMinutes: studyMinutes})
	return err
}
