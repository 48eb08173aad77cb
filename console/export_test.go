package console

// Lines exposes the channel fed by the background reader.
func (p *Phone) Lines() <-chan string { return p.lines }
