// Command wavelength-cli plays one round of the spectrum guessing game
// against a running wavelength-server from the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/dial"
	"github.com/shenminzhang/wavelengthwalfie/internal/roundclient"
	"github.com/shenminzhang/wavelengthwalfie/internal/session"

	"github.com/joho/godotenv"
)

// Dial rendering constants for the textual coordinate readout.
const (
	dialCenterX = 50.0
	dialCenterY = 0.0
	dialRadius  = 40.0
)

func main() {
	_ = godotenv.Load()
	base := os.Getenv(constants.EnvAPIBaseURL)
	if base == "" {
		base = "http://127.0.0.1:8080"
	}

	sess := session.New(roundclient.New(base))
	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		switch sess.State() {
		case session.StateThemeEntry:
			fmt.Print("Theme: ")
			if !in.Scan() {
				return
			}
			fmt.Println("Generating round...")
			if err := sess.Generate(ctx, in.Text()); err != nil {
				fmt.Printf("  %s\n", sess.ErrorMessage())
			}

		case session.StateGuessing:
			r := sess.Round()
			fmt.Printf("\nSpectrum: %s\n", r.SpectrumLabel)
			fmt.Printf("  %s (0)  <->  %s (100)\n", r.LeftAnchor, r.RightAnchor)
			fmt.Printf("Clue: %s\n", r.Clue)
			printPointer("guess", float64(sess.Guess()))
			fmt.Print("Enter a position 0-100, or 'go' to lock it in: ")
			if !in.Scan() {
				return
			}
			line := strings.TrimSpace(in.Text())
			if strings.EqualFold(line, "go") {
				if err := sess.Submit(ctx); err != nil {
					fmt.Printf("  %s\n", sess.ErrorMessage())
				}
				continue
			}
			v, err := strconv.Atoi(line)
			if err != nil {
				fmt.Println("  enter a whole number or 'go'")
				continue
			}
			sess.AdjustGuess(v)

		case session.StateRevealed:
			rev := sess.Reveal()
			fmt.Printf("\nThe target was %.0f.\n", rev.Target)
			printPointer("target", dial.Clamp(rev.Target, 0, 100))
			if rev.Distance != nil {
				fmt.Printf("You were %d away.\n", *rev.Distance)
			}
			fmt.Printf("%s\n", rev.Score)
			fmt.Printf("Verdict: %s\n", sess.Narrative())
			fmt.Print("Play again? (y/n): ")
			if !in.Scan() {
				return
			}
			if !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
				return
			}
			sess.Reset()
		}
	}
}

// printPointer shows where a value lands on the semicircular dial.
func printPointer(label string, v float64) {
	x, y := dial.Point(dialCenterX, dialCenterY, dialRadius, v)
	fmt.Printf("  %s pointer at %.0f -> dial position (%.1f, %.1f)\n", label, v, x, y)
}
