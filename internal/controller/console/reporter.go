package console

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/vadim/vk-metric/internal/domain/report/entity"
)

const reportTemplate = `url {{.URL}} subs {{.Subs}} pubs {{.Pubs}}, pub_rate {{rate .PubRate}},
comments count {{.CommentsCount}}, views count {{.ViewsCount}}, likes count {{.LikesCount}} shares count {{.SharesCount}}
comments min {{.CommentsMin}}, views min {{.ViewsMin}}, likes min {{.LikesMin}}, shares min {{.SharesMin}}
comments max {{.CommentsMax}}, views max {{.ViewsMax}}, likes max {{.LikesMax}}, shares max {{.SharesMax}}
comments rate {{rate .CommentsRate}} views rate {{rate .ViewsRate}}, likes rate {{rate .LikesRate}} shares rate {{rate .SharesRate}}
`

const membershipTemplate = `group {{.GroupID}}: {{len .Matches}} of {{.Watched}} watched users are members
{{range .Matches}}https://vk.com/id{{.}} is a member of group {{$.GroupID}}
{{end}}`

// Membership is the result of checking watched users against one group
type Membership struct {
	GroupID int64
	Watched int
	Matches []int64
}

// Reporter prints reports to the console in a human-readable form
type Reporter struct {
	writer     io.Writer
	report     *template.Template
	membership *template.Template
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	funcs := template.FuncMap{
		"rate": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	return &Reporter{
		writer:     writer,
		report:     template.Must(template.New("report").Funcs(funcs).Parse(reportTemplate)),
		membership: template.Must(template.New("membership").Parse(membershipTemplate)),
	}
}

// Report prints one account report
func (r *Reporter) Report(report entity.Report) error {
	if err := r.report.Execute(r.writer, report); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// Membership prints the watched users found in a group
func (r *Reporter) Membership(m Membership) error {
	if err := r.membership.Execute(r.writer, m); err != nil {
		return fmt.Errorf("rendering membership: %w", err)
	}
	return nil
}
