package keytable

// Keys returns the CPC layout in presentation order, top row first. The
// returned slice is freshly allocated so callers cannot mutate the table.
func Keys() []Key {
	table := []Key{
		{Name: "Escape", X: 0, Y: 0, Width: 100, Labels: []string{"ESC"}},
		{Name: "Key1", X: 100, Y: 0, Width: 100, Labels: []string{"!", "1"}},
		{Name: "Key2", X: 200, Y: 0, Width: 100, Labels: []string{`"`, "2"}},
		{Name: "Key3", X: 300, Y: 0, Width: 100, Labels: []string{"#", "3"}},
		{Name: "Key4", X: 400, Y: 0, Width: 100, Labels: []string{"$", "4"}},
		{Name: "Key5", X: 500, Y: 0, Width: 100, Labels: []string{"%", "5"}},
		{Name: "Key6", X: 600, Y: 0, Width: 100, Labels: []string{"&amp;", "6"}},
		{Name: "Key7", X: 700, Y: 0, Width: 100, Labels: []string{"'", "7"}},
		{Name: "Key8", X: 800, Y: 0, Width: 100, Labels: []string{"(", "8"}},
		{Name: "Key9", X: 900, Y: 0, Width: 100, Labels: []string{")", "9"}},
		{Name: "Key0", X: 1000, Y: 0, Width: 100, Labels: []string{"_", "0"}},
		{Name: "Minus", X: 1100, Y: 0, Width: 100, Labels: []string{"=", "-"}},
		{Name: "Caret", X: 1200, Y: 0, Width: 100, Labels: []string{"£", "↑"}},
		{Name: "Clear", X: 1300, Y: 0, Width: 100, Labels: []string{"CLR"}},
		{Name: "Delete", X: 1400, Y: 0, Width: 100, Labels: []string{"DEL"}},
		{Name: "Numpad7", X: 1500, Y: 0, Width: 100, Labels: []string{"F7"}},
		{Name: "Numpad8", X: 1600, Y: 0, Width: 100, Labels: []string{"F8"}},
		{Name: "Numpad9", X: 1700, Y: 0, Width: 100, Labels: []string{"F9"}},
		{Name: "JoystickUp", X: 2000, Y: 0, Width: 100, Labels: []string{"⇧"}},

		{Name: "Tab", X: 0, Y: 100, Width: 125, Labels: []string{"TAB"}},
		{Name: "Q", X: 125, Y: 100, Width: 100, Labels: []string{"Q"}},
		{Name: "W", X: 225, Y: 100, Width: 100, Labels: []string{"W"}},
		{Name: "E", X: 325, Y: 100, Width: 100, Labels: []string{"E"}},
		{Name: "R", X: 425, Y: 100, Width: 100, Labels: []string{"R"}},
		{Name: "T", X: 525, Y: 100, Width: 100, Labels: []string{"T"}},
		{Name: "Y", X: 625, Y: 100, Width: 100, Labels: []string{"Y"}},
		{Name: "U", X: 725, Y: 100, Width: 100, Labels: []string{"U"}},
		{Name: "I", X: 825, Y: 100, Width: 100, Labels: []string{"I"}},
		{Name: "O", X: 925, Y: 100, Width: 100, Labels: []string{"O"}},
		{Name: "P", X: 1025, Y: 100, Width: 100, Labels: []string{"P"}},
		{Name: "At", X: 1125, Y: 100, Width: 100, Labels: []string{"|", "@"}},
		{Name: "BracketLeft", X: 1225, Y: 100, Width: 100, Labels: []string{"{", "["}},
		{Name: "Enter", X: 1325, Y: 100, Width: 175, Labels: []string{"RETURN"}},
		{Name: "Numpad4", X: 1500, Y: 100, Width: 100, Labels: []string{"F4"}},
		{Name: "Numpad5", X: 1600, Y: 100, Width: 100, Labels: []string{"F5"}},
		{Name: "Numpad6", X: 1700, Y: 100, Width: 100, Labels: []string{"F6"}},
		{Name: "JoystickLeft", X: 1900, Y: 100, Width: 100, Labels: []string{"⇦"}},
		{Name: "JoystickIcon", X: 2000, Y: 100, Width: 100, Labels: []string{"🕹"}, FontSize: 70},
		{Name: "JoystickRight", X: 2100, Y: 100, Width: 100, Labels: []string{"⇨"}},

		{Name: "CapsLock", X: 0, Y: 200, Width: 150, Labels: []string{"CAPS", "LOCK"}},
		{Name: "A", X: 150, Y: 200, Width: 100, Labels: []string{"A"}},
		{Name: "S", X: 250, Y: 200, Width: 100, Labels: []string{"S"}},
		{Name: "D", X: 350, Y: 200, Width: 100, Labels: []string{"D"}},
		{Name: "F", X: 450, Y: 200, Width: 100, Labels: []string{"F"}},
		{Name: "G", X: 550, Y: 200, Width: 100, Labels: []string{"G"}},
		{Name: "H", X: 650, Y: 200, Width: 100, Labels: []string{"H"}},
		{Name: "J", X: 750, Y: 200, Width: 100, Labels: []string{"J"}},
		{Name: "K", X: 850, Y: 200, Width: 100, Labels: []string{"K"}},
		{Name: "L", X: 950, Y: 200, Width: 100, Labels: []string{"L"}},
		{Name: "Colon", X: 1050, Y: 200, Width: 100, Labels: []string{"*", ":"}},
		{Name: "Semicolon", X: 1150, Y: 200, Width: 100, Labels: []string{"+", ";"}},
		{Name: "BracketRight", X: 1250, Y: 200, Width: 100, Labels: []string{"}", "]"}},
		{Name: "Numpad1", X: 1500, Y: 200, Width: 100, Labels: []string{"F1"}},
		{Name: "Numpad2", X: 1600, Y: 200, Width: 100, Labels: []string{"F2"}},
		{Name: "Numpad3", X: 1700, Y: 200, Width: 100, Labels: []string{"F3"}},
		{Name: "JoystickDown", X: 2000, Y: 200, Width: 100, Labels: []string{"⇩"}},

		{Name: "ShiftLeft", X: 0, Y: 300, Width: 200, Labels: []string{"SHIFT"}},
		{Name: "Z", X: 200, Y: 300, Width: 100, Labels: []string{"Z"}},
		{Name: "X", X: 300, Y: 300, Width: 100, Labels: []string{"X"}},
		{Name: "C", X: 400, Y: 300, Width: 100, Labels: []string{"C"}},
		{Name: "V", X: 500, Y: 300, Width: 100, Labels: []string{"V"}},
		{Name: "B", X: 600, Y: 300, Width: 100, Labels: []string{"B"}},
		{Name: "N", X: 700, Y: 300, Width: 100, Labels: []string{"N"}},
		{Name: "M", X: 800, Y: 300, Width: 100, Labels: []string{"M"}},
		{Name: "Comma", X: 900, Y: 300, Width: 100, Labels: []string{"&lt;", ","}},
		{Name: "Period", X: 1000, Y: 300, Width: 100, Labels: []string{"&gt;", "."}},
		{Name: "Slash", X: 1100, Y: 300, Width: 100, Labels: []string{"?", "/"}},
		{Name: "Backslash", X: 1200, Y: 300, Width: 100, Labels: []string{"`", `\`}},
		{Name: "ShiftRight", X: 1300, Y: 300, Width: 200, Labels: []string{"SHIFT"}},
		{Name: "Numpad0", X: 1500, Y: 300, Width: 100, Labels: []string{"F0"}},
		{Name: "ArrowUp", X: 1600, Y: 300, Width: 100, Labels: []string{"⇧"}},
		{Name: "NumpadPeriod", X: 1700, Y: 300, Width: 100, Labels: []string{"."}},
		{Name: "JoystickFire1", X: 1900, Y: 300, Width: 100, Labels: []string{"FIRE 1"}, FontSize: 25},
		{Name: "JoystickFire2", X: 2000, Y: 300, Width: 100, Labels: []string{"FIRE 2"}, FontSize: 25},
		{Name: "JoystickFire3", X: 2100, Y: 300, Width: 100, Labels: []string{"FIRE 3"}, FontSize: 25},

		{Name: "Control", X: 0, Y: 400, Width: 200, Labels: []string{"CONTROL"}},
		{Name: "Copy", X: 200, Y: 400, Width: 175, Labels: []string{"COPY"}},
		// The space bar carries no label and is drawn entirely by the
		// keyboard renderer, so it has no entry here.
		{Name: "NumpadEnter", X: 1175, Y: 400, Width: 325, Labels: []string{"ENTER"}},
		{Name: "ArrowLeft", X: 1500, Y: 400, Width: 100, Labels: []string{"⇦"}},
		{Name: "ArrowDown", X: 1600, Y: 400, Width: 100, Labels: []string{"⇩"}},
		{Name: "ArrowRight", X: 1700, Y: 400, Width: 100, Labels: []string{"⇨"}},
	}
	out := make([]Key, len(table))
	copy(out, table)
	return out
}
