package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	TemplateProvider *TemplateProvider
	EngineerProvider *EngineerProvider
	JobCardProvider  *JobCardProvider
	ReportProvider   *ReportProvider
}

func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		TemplateProvider: NewTemplateProvider(db),
		EngineerProvider: NewEngineerProvider(db),
		JobCardProvider:  NewJobCardProvider(db),
		ReportProvider:   NewReportProvider(db),
	}
}

// ReportSource is the read side the report assembler needs.
type ReportSource struct {
	*JobCardProvider
	*EngineerProvider
}

func (p *Providers) ReportSource() ReportSource {
	return ReportSource{JobCardProvider: p.JobCardProvider, EngineerProvider: p.EngineerProvider}
}
