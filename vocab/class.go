package vocab

import "fmt"

// Class is the grammatical word class of a number word. It drives both the
// FST transitions and the place-value comparisons.
type Class uint8

const (
	Zero          Class = iota // 0
	Digit                      // 1–9
	Teen                       // 10–19, irregular forms
	Tens                       // 20, 30, …, 90
	Hundred                    // 100
	Scale                      // 1000 and its powers
	DecimalMarker              // "point", "virgule"; carries no value
)

var classNames = [...]string{
	Zero:          "zero",
	Digit:         "digit",
	Teen:          "teen",
	Tens:          "tens",
	Hundred:       "hundred",
	Scale:         "scale",
	DecimalMarker: "decimal_marker",
}

// String returns the lowercase name of the class as used in table files.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ParseClass returns the class named s.
func ParseClass(s string) (Class, bool) {
	for i, name := range classNames {
		if name == s {
			return Class(i), true
		}
	}
	return 0, false
}
