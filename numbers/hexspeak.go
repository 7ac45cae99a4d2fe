package numbers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/reugn/go-anniversary/anniversary"
)

// HexspeakLabel is the label of hexspeak numbers. They never collapse with
// natural numbers of the same value.
const HexspeakLabel = "hexspeak"

// letters spelled by hexadecimal digits other than a-f
var hexLetters = strings.NewReplacer(
	"o", "0",
	"i", "1",
	"l", "1",
	"s", "5",
	"g", "6",
	"t", "7",
)

var hexspeakWords = []string{
	"ace", "add", "babe", "bad", "bead", "bed", "bee", "beef", "boss",
	"cab", "cafe", "cast", "cede", "code", "coffee", "dad", "dead", "deaf",
	"decade", "decode", "deed", "dice", "doe", "dose", "face", "facade",
	"fade", "feed", "fiasco", "glide", "gold", "ice", "iced", "idea",
	"loaf", "oasis", "odd", "safe", "seed", "side", "sofa", "toad",
}

// hexspeakNumbers is built once; numbers are immutable and can be shared
// by every generator.
var hexspeakNumbers = buildHexspeak(hexspeakWords)

// Hexspeak returns a finite number source producing, in ascending order,
// the numbers whose hexadecimal representation spells a word.
func Hexspeak() *anniversary.SliceGenerator {
	return anniversary.NewSliceGenerator(hexspeakNumbers...)
}

func buildHexspeak(words []string) []*anniversary.GeneratedNumber {
	type spelling struct {
		word  string
		hex   string
		value int64
	}
	spellings := make([]spelling, 0, len(words))
	for _, word := range words {
		hex := strings.ToUpper(hexLetters.Replace(word))
		value, err := strconv.ParseInt(hex, 16, 64)
		if err != nil || value == 0 {
			continue // not spellable
		}
		spellings = append(spellings, spelling{word, hex, value})
	}
	sort.SliceStable(spellings, func(i, j int) bool {
		return spellings[i].value < spellings[j].value
	})

	numbers := make([]*anniversary.GeneratedNumber, 0, len(spellings))
	for i, s := range spellings {
		if i > 0 && s.value == spellings[i-1].value {
			continue
		}
		number := anniversary.NewGeneratedNumberWithOddity(s.value, HexspeakLabel, anniversary.DefaultOddity)
		numbers = append(numbers, number.WithHelpText(
			fmt.Sprintf("0x%s spells %q in hexspeak", s.hex, s.word)))
	}
	return numbers
}
