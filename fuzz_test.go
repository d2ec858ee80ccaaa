package words2num

import "testing"

// FuzzEvaluate verifies that Evaluate never panics for any input and locale.
func FuzzEvaluate(f *testing.F) {
	f.Add("", "fr")
	f.Add("quatre-vingt-dix-neuf", "fr")
	f.Add("cinq virgule deux millions", "fr_CA")
	f.Add("nine hundred and nineteen", "en")
	f.Add("İKİ milyon", "az")
	f.Add("\xff\xfe", "\xff")
	f.Add("mille", "")

	f.Fuzz(func(t *testing.T, text, tag string) {
		// Must not panic.
		_, _ = Evaluate(text, tag)
		_, _ = EvaluateFloat(text, tag)
	})
}

// FuzzDenormalize verifies that Denormalize never panics and leaves text
// without number words unchanged.
func FuzzDenormalize(f *testing.F) {
	f.Add("il y a deux cent cinquante personnes")
	f.Add("vingt et un, cent!")
	f.Add("le point important")
	f.Add("\xff\xfe cent")

	f.Fuzz(func(t *testing.T, s string) {
		out, err := Denormalize(s, "fr")
		if err != nil {
			t.Fatalf("Denormalize(%q): %v", s, err)
		}
		if out == "" && s != "" {
			t.Fatalf("Denormalize(%q) returned empty output", s)
		}
	})
}
