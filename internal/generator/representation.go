package generator

import (
	"fmt"
	"strings"
)

func init() {
	register("representation.numeric.integer_number", genIntegerNumber)
	register("representation.numeric.decimal_number", genDecimalNumber)
	register("representation.numeric.percentage", genPercentage)
	register("representation.numeric.increment", genIncrement)

	register("representation.text.plain_text", genPlainText)
	register("representation.text.word", genWord)
	register("representation.text.color_hex", genColorHex)
	register("representation.text.emoji", genEmoji)
}

func genIntegerNumber(g *Generator, _ string) string {
	if g.rng.Float64() < 0.1 {
		return fmt.Sprintf("-%d", 1+g.rng.Intn(100000))
	}
	return fmt.Sprintf("%d", g.rng.Intn(1000000))
}

func genDecimalNumber(g *Generator, _ string) string {
	whole := g.rng.Intn(10000)
	frac := g.rng.Intn(1000000)
	sign := ""
	if g.rng.Float64() < 0.1 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%06d", sign, whole, frac)
}

func genPercentage(g *Generator, _ string) string {
	if g.rng.Float64() < 0.5 {
		return fmt.Sprintf("%d%%", g.rng.Intn(101))
	}
	return fmt.Sprintf("%.2f%%", g.rng.Float64()*100)
}

// genIncrement emits small monotonically-plausible-looking integers,
// the kind a row id or sequence column would contain.
func genIncrement(g *Generator, _ string) string {
	return fmt.Sprintf("%d", 1+g.rng.Intn(500))
}

func genPlainText(g *Generator, _ string) string {
	n := 3 + g.rng.Intn(8)
	words := make([]string, n)
	for i := range words {
		words[i] = g.randomWord()
	}
	return strings.Join(words, " ")
}

func genWord(g *Generator, _ string) string { return g.randomWord() }

func genColorHex(g *Generator, _ string) string {
	return fmt.Sprintf("#%06x", g.rng.Intn(1<<24))
}

// emojis is disjoint from genderSymbols so the post-processor's
// emoji-vs-gender-symbol rule can discriminate on set membership
// alone (spec.md §4.E).
var emojis = []string{"😀", "🎉", "🚀", "🔥", "✨", "🐛", "📦", "🌟", "💡", "🎯"}

func genEmoji(g *Generator, _ string) string { return g.choice(emojis) }
