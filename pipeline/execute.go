package pipeline

// execute runs the Execute stage: every busy station whose operands are
// both resolved ticks its countdown timer down by one, until it reaches
// zero (spec.md §4.3). A station becomes eligible for Write-Result the
// cycle after TimeLeft reaches zero, which this stage-order (Execute
// before the next cycle's Write-Result, Write-Result before Execute
// within the same cycle) naturally realises.
func (p *Pipeline) execute() {
	for _, station := range p.pool.All() {
		if !station.Busy {
			continue
		}
		if !station.Vj.Resolved() || !station.Vk.Resolved() {
			continue
		}
		if station.TimeLeft > 0 {
			station.TimeLeft--
		}
	}
}
