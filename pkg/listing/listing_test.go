//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package listing_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/savswap/pkg/listing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		expected []string
	}{
		{"empty output", nil, []string{}},
		{"single line without newline", []byte("a.sav"), []string{"a.sav"}},
		{"preserves order", []byte("b.sav\na.sav\nc.sav\n"), []string{"b.sav", "a.sav", "c.sav"}},
		{"windows line endings", []byte("a.sav\r\nb.sav\r\n"), []string{"a.sav", "b.sav"}},
		{"skips blank lines", []byte("a.sav\n\n  \nb.sav\n"), []string{"a.sav", "b.sav"}},
		{"keeps inner spaces", []byte("my save.sav\n"), []string{"my save.sav"}},
		{"invalid utf-8 is substituted", []byte("a\xffb.sav\n"), []string{"a�b.sav"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(listing.Parse(tt.input)).Should(Equal(tt.expected))
		})
	}
}

func TestDecode_LossyDoesNotFail(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(listing.Decode([]byte{0xc3, 0x28})).Should(Equal("�("))
	g.Expect(listing.Decode([]byte("1 file pulled"))).Should(Equal("1 file pulled"))
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	names := []string{"Slot1.SAV", "slot2.sav", "notes.txt", "backup"}

	tests := []struct {
		pattern  string
		expected []string
	}{
		{"", names},
		{"*.sav", []string{"Slot1.SAV", "slot2.sav"}},
		{"slot?.*", []string{"Slot1.SAV", "slot2.sav"}},
		{"*.{txt,bak}", []string{"notes.txt"}},
		{"*.none", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(listing.NewFilter(tt.pattern).Apply(names)).Should(Equal(tt.expected))
		})
	}
}

func TestFilter_NilKeepsEverything(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var filter *listing.Filter

	g.Expect(filter.Apply([]string{"a", "b"})).Should(Equal([]string{"a", "b"}))
}

func TestFilter_Validate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(listing.NewFilter("").Validate()).Should(Succeed())
	g.Expect(listing.NewFilter("*.sav").Validate()).Should(Succeed())
	g.Expect(listing.NewFilter("[unclosed").Validate()).Should(MatchError(ContainSubstring("invalid filter pattern")))
}
