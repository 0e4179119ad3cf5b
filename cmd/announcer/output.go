package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// emit prints the generated text and copies it to the clipboard unless
// --no-copy was given. Clipboard failures are not fatal.
func emit(title, text string) {
	rule := strings.Repeat("=", 60)
	fmt.Println("\n" + rule)
	fmt.Printf("📝 %s:\n", title)
	fmt.Println(rule)
	fmt.Println(text)
	fmt.Println(rule)

	if flagNoCopy {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Printf("❌ Could not copy to clipboard: %v\n", err)
		return
	}
	fmt.Println("✅ Text copied to clipboard!")
}
