package wildmatch_test

import (
	"fmt"

	"github.com/coregx/wildmatch"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	p, err := wildmatch.Compile("20??-01-01*", wildmatch.ExactMatch)
	if err != nil {
		panic(err)
	}

	fmt.Println(p.Match([]byte("2024-01-01-final")))
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	p := wildmatch.MustCompile("*.log", wildmatch.ExactMatch)
	fmt.Println(p.MatchString("server.log"))
	// Output: true
}

// ExamplePattern_Find demonstrates locating the first match.
func ExamplePattern_Find() {
	p := wildmatch.MustCompile("a?c", wildmatch.Partial)
	start, length := p.Find([]byte("zzabczz"))
	fmt.Printf("match at [%d:%d]\n", start, start+length)
	// Output: match at [2:5]
}

// ExamplePattern_FindAll demonstrates collecting every match.
func ExamplePattern_FindAll() {
	p := wildmatch.MustCompile("b?", wildmatch.Partial)
	fmt.Println(p.FindAllString("abc abd", -1))
	// Output: [[1 2] [5 2]]
}

// ExamplePattern_Matches demonstrates iterating matches lazily.
func ExamplePattern_Matches() {
	p := wildmatch.MustCompile("??-??", wildmatch.Partial)
	for start, length := range p.MatchesString("ab-cd ef-gh") {
		fmt.Println(start, length)
	}
	// Output:
	// 0 5
	// 6 5
}

// ExampleCompileWithConfig demonstrates SQL LIKE style tokens.
func ExampleCompileWithConfig() {
	config := wildmatch.Config{UnknownToken: '_', AnythingToken: '%'}

	p, err := wildmatch.CompileWithConfig("19__-%", wildmatch.ExactMatch, config)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.MatchString("1984-orwell"))
	// Output: true
}

// ExamplePattern_ToRegex demonstrates rendering a pattern as a regular
// expression.
func ExamplePattern_ToRegex() {
	p := wildmatch.MustCompile("20??-01*", wildmatch.ExactMatch)
	fmt.Println(p.ToRegex(wildmatch.Standard))
	fmt.Println(p.ToRegex(wildmatch.SQLQuoted))
	// Output:
	// ^20..-01.*
	// '^20..-01.*'
}

// ExampleCompileSet demonstrates matching many patterns at once.
func ExampleCompileSet() {
	set, err := wildmatch.CompileSet([]string{
		"*.log", "report-??.txt", "*core*",
	}, wildmatch.ExactMatch)
	if err != nil {
		panic(err)
	}

	fmt.Println(set.MatchString("report-07.txt"))
	fmt.Println(set.Matching([]byte("core.log")))
	// Output:
	// true
	// [0 2]
}
