package report

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (ReportOutput, error)
	List(ctx context.Context) ([]ReportOutput, error)
	GetByID(ctx context.Context, input GetInput) (ReportOutput, error)
	Update(ctx context.Context, input UpdateInput) (ReportOutput, error)
	Delete(ctx context.Context, input DeleteInput) error
	AttachAnalysis(ctx context.Context, input AttachAnalysisInput) (ReportOutput, error)
	Generate(ctx context.Context, input GenerateInput) (ReportOutput, error)
}
