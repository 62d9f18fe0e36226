package bgm

// BringRow is one line of the "to bring" report: games the owner keeps,
// without the credit columns.
type BringRow struct {
	Name string
	Won  int
	Keep int
}

// BringReport lists the games with a positive keep quantity, in
// registration order.
func (l *Ledger) BringReport() []BringRow {
	var rows []BringRow
	for g := range l.Games(WantsToBring) {
		rows = append(rows, BringRow{Name: g.Name, Won: g.Won, Keep: g.Keep})
	}
	return rows
}

// CreditRow is one line of the "for credit" report, with the computed total
// for that game.
type CreditRow struct {
	Name   string
	Won    int
	Keep   int
	Credit int
	Value  Money
	Total  Money
}

// CreditReport is the "for credit" view: every game with surplus units and
// the aggregate credit across them.
type CreditReport struct {
	Rows  []CreditRow
	Total Money
}

// CreditReport builds the credit view of the ledger. Total is zero when no
// game has surplus units.
func (l *Ledger) CreditReport() *CreditReport {
	report := &CreditReport{Total: M(0)}
	for g := range l.Games(HasCredit) {
		total := g.TotalCredit()
		report.Rows = append(report.Rows, CreditRow{
			Name:   g.Name,
			Won:    g.Won,
			Keep:   g.Keep,
			Credit: g.Credit,
			Value:  g.Value,
			Total:  total,
		})
		report.Total = report.Total.Add(total)
	}
	return report
}
