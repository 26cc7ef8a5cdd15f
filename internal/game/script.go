package game

// ParseScript turns a key string into one Input per rune, using the window
// key bindings: w/s move, a/d turn, 1/2 switch view, q or / quit. Any other
// rune is an idle tick.
func ParseScript(script string) []Input {
	out := make([]Input, 0, len(script))
	for _, r := range script {
		out = append(out, KeyInput(r))
	}
	return out
}

// KeyInput maps a single key rune to the Input it holds down.
func KeyInput(r rune) Input {
	var in Input
	switch r {
	case 'w', 'W':
		in.Forward = true
	case 's', 'S':
		in.Backward = true
	case 'a', 'A':
		in.RotateLeft = true
	case 'd', 'D':
		in.RotateRight = true
	case '1':
		in.FirstPerson = true
	case '2':
		in.TopDown = true
	case 'q', 'Q', '/':
		in.Quit = true
	}
	return in
}

// Merge combines two inputs as if both keys were held.
func (in Input) Merge(other Input) Input {
	return Input{
		Quit:        in.Quit || other.Quit,
		FirstPerson: in.FirstPerson || other.FirstPerson,
		TopDown:     in.TopDown || other.TopDown,
		RotateLeft:  in.RotateLeft || other.RotateLeft,
		RotateRight: in.RotateRight || other.RotateRight,
		Forward:     in.Forward || other.Forward,
		Backward:    in.Backward || other.Backward,
	}
}
