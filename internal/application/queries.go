package application

type ReportOptions struct {
	ProjectRank bool
	ExcludeSelf bool
	// AtCapture evaluates the snapshot at its capture instant instead of now.
	AtCapture bool
}

type GenerateReportQuery struct {
	Username string
	Options  ReportOptions
}
