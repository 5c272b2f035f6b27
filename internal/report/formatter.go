package report

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/district-atlas/internal/cli"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 30
	developingNote  = "Detailed strategies for this district are being developed based on the generic provincial templates."
)

// Formatter renders report sections as styled terminal text.
type Formatter struct {
	decimals int
	barWidth int
}

// NewFormatter creates a formatter that rounds summary percentages to decimals places.
func NewFormatter(decimals int) *Formatter {
	return &Formatter{
		decimals: decimals,
		barWidth: defaultBarWidth,
	}
}

// FormatOverview renders the national composition and each district's majority.
func (f *Formatter) FormatOverview(r *Report) string {
	if r == nil {
		return cli.FormatError("No report available")
	}

	sections := []string{
		cli.FormatTitle(cli.ChartIcon, "Overview of Religious Demographics"),
		cli.SubtitleStyle.Render("National Religious Composition (average across districts)"),
		f.compositionBars(r.National),
		"",
		cli.SubtitleStyle.Render("Religious Majority by District"),
		f.majorityTable(r.DistrictStats),
	}

	return strings.Join(sections, "\n")
}

// FormatDistricts renders the composition of every district as a table.
func (f *Formatter) FormatDistricts(r *Report) string {
	if r == nil {
		return cli.FormatError("No report available")
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	header := append([]string{"District", "Province"}, categoryNames()...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range r.Demographics {
		cells := []string{row.District, string(row.Province)}
		for _, v := range row.Composition().Values() {
			cells = append(cells, f.percent(v))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()

	return strings.Join([]string{
		cli.FormatTitle(cli.MapIcon, "Religious Composition by District"),
		cli.FormatTableHeader(b.String()),
	}, "\n")
}

// FormatDistrict renders the detail view for one district.
func (f *Formatter) FormatDistrict(r *Report, district string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("no report available")
	}
	row, ok := r.Row(district)
	if !ok {
		return "", fmt.Errorf("district %q is not in the report", district)
	}
	st, _ := r.Stats(district)

	metrics := []string{
		fmt.Sprintf("%-22s %s (%s%%)", "Majority Religion:", st.MajorityCategory, f.percent(st.MajorityPercentage)),
		fmt.Sprintf("%-22s %.3f (higher = more diverse)", "Diversity Index:", st.DiversityIndex),
		fmt.Sprintf("%-22s %s%%", "Minority Population:", f.percent(st.MinorityPercentage)),
	}

	sections := []string{
		cli.FormatTitle(cli.MapIcon, row.District+" District"),
		cli.BoldStyle.Render("Province: ") + string(row.Province),
		"",
		f.compositionBars(row.Composition()),
		"",
		cli.RenderBox("Key Statistics", strings.Join(metrics, "\n")),
	}
	return strings.Join(sections, "\n"), nil
}

// FormatProvince renders the summary for one province and its districts.
func (f *Formatter) FormatProvince(r *Report, province model.Province) (string, error) {
	if r == nil {
		return "", fmt.Errorf("no report available")
	}

	var summary *model.ProvinceSummary
	for i := range r.Provinces {
		if r.Provinces[i].Province == province {
			summary = &r.Provinces[i]
			break
		}
	}
	if summary == nil {
		return "", fmt.Errorf("province %q is not in the report", province)
	}

	var members []model.DistrictStats
	for _, st := range r.DistrictStats {
		if st.Province == province {
			members = append(members, st)
		}
	}

	sections := []string{
		cli.FormatTitle(cli.MapIcon, string(province)+" Province"),
		cli.SubtleStyle.Render(fmt.Sprintf("Average across %d districts", summary.Districts)),
		"",
		f.compositionBars(summary.Means),
		"",
		cli.SubtitleStyle.Render("Districts"),
		f.majorityTable(members),
	}
	return strings.Join(sections, "\n"), nil
}

// FormatStrategies renders the numbered strategy list for one district.
func (f *Formatter) FormatStrategies(r *Report, district string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("no report available")
	}
	row, ok := r.Row(district)
	if !ok {
		return "", fmt.Errorf("district %q is not in the report", district)
	}

	sections := []string{
		cli.FormatTitle(cli.HandsIcon, "Strategies for "+row.District+" District"),
		cli.BoldStyle.Render("Province: ") + string(row.Province),
		"",
	}

	list := r.StrategiesFor(row.District)
	if len(list) == 0 {
		sections = append(sections, cli.FormatInfo(developingNote))
	}
	for i, strategy := range list {
		sections = append(sections, cli.BoldStyle.Render(fmt.Sprintf("%d.", i+1))+" "+strategy)
	}

	sections = append(sections, "", cli.SubtitleStyle.Render("District Demographics"), f.compositionBars(row.Composition()))
	return strings.Join(sections, "\n"), nil
}

// FormatThemes renders how many districts use each strategy theme.
func (f *Formatter) FormatThemes(r *Report) string {
	if r == nil || len(r.Themes) == 0 {
		return cli.FormatInfo("No strategy themes recorded")
	}

	most := 0
	for _, t := range r.Themes {
		most = max(most, t.Districts)
	}

	lines := []string{cli.SubtitleStyle.Render("Strategy Categories Across Districts")}
	for _, t := range r.Themes {
		lines = append(lines, fmt.Sprintf("%-32s %s %d",
			t.Theme,
			lipgloss.NewStyle().Foreground(cli.PrimaryColor).Render(bar(float64(t.Districts), float64(most), f.barWidth/2)),
			t.Districts,
		))
	}
	return strings.Join(lines, "\n")
}

// FormatAnalytics renders the diversity ranking, priority matrix and province summary.
func (f *Formatter) FormatAnalytics(r *Report) string {
	if r == nil {
		return cli.FormatError("No report available")
	}

	sections := []string{
		cli.FormatTitle(cli.TrendIcon, "Strategic Analytics"),
		cli.SubtitleStyle.Render("Most Religiously Diverse Districts"),
		f.diversityTable(r.TopDiverse),
		"",
		cli.SubtitleStyle.Render("Strategic Priority Matrix"),
		f.priorityTable(r.Priorities),
		"",
		cli.SubtitleStyle.Render("Provincial Summary"),
		f.provinceTable(r.Provinces),
	}
	return strings.Join(sections, "\n")
}

func (f *Formatter) compositionBars(c model.Composition) string {
	lines := make([]string, 0, len(model.CategoryAccessors))
	for _, acc := range model.CategoryAccessors {
		v := acc.Get(c)
		lines = append(lines, fmt.Sprintf("%-10s %s %s%%",
			acc.Category,
			cli.CategoryStyle(acc.Category).Render(bar(v, 100, f.barWidth)),
			f.percent(v),
		))
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) majorityTable(rows []model.DistrictStats) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "District\tProvince\tMajority Religion\tPercentage")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%%\n", row.District, row.Province, row.MajorityCategory, f.percent(row.MajorityPercentage))
	}
	_ = tw.Flush()
	return cli.FormatTableHeader(strings.TrimRight(b.String(), "\n"))
}

func (f *Formatter) diversityTable(rows []model.DistrictStats) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDistrict\tProvince\tDiversity Score")
	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\n", i+1, row.District, row.Province, row.DiversityIndex)
	}
	_ = tw.Flush()
	return cli.FormatTableHeader(strings.TrimRight(b.String(), "\n"))
}

func (f *Formatter) priorityTable(rows []model.Priority) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "District\tDiversity Score\tStrategy Development\tStrategies")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%.3f\t%s\t%d\n", row.District, row.DiversityIndex, row.Development, row.StrategyCount)
	}
	_ = tw.Flush()
	return cli.FormatTableHeader(strings.TrimRight(b.String(), "\n"))
}

func (f *Formatter) provinceTable(rows []model.ProvinceSummary) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(append([]string{"Province"}, categoryNames()...), "\t"))
	for _, row := range rows {
		cells := []string{string(row.Province)}
		for _, v := range row.Means.Values() {
			cells = append(cells, f.percent(v))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
	return cli.FormatTableHeader(strings.TrimRight(b.String(), "\n"))
}

func (f *Formatter) percent(v float64) string {
	return strconv.FormatFloat(v, 'f', f.decimals, 64)
}

func bar(value, scale float64, width int) string {
	if scale <= 0 || value <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / scale * float64(width))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func categoryNames() []string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, c.String())
	}
	return names
}
