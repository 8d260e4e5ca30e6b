package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rajveda/jyotish/internal/model"
	"github.com/rajveda/jyotish/internal/yoga"
)

// chatCmd runs the interactive loop with rule-based intent parsing
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive astro chat with rule-based intent parsing",
	Long: `Chat answers command-style questions against stored profiles.

Recognized intents:
  current dasha ... profile: <name>
  life overview ... profile: <name>
  compare ... profile: <name> ... profile: <name>

Type 'exit' to stop.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// profileArg extracts the profile name after the last "profile:" marker.
func profileArg(question string) string {
	idx := strings.LastIndex(strings.ToLower(question), "profile:")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(question[idx+len("profile:"):])
}

// compareArgs extracts both profile names from a compare question.
func compareArgs(question string) (string, string, bool) {
	var names []string
	for _, segment := range strings.Split(question, "profile") {
		if !strings.Contains(segment, ":") {
			continue
		}
		name := segment[strings.Index(segment, ":")+1:]
		names = append(names, strings.Trim(name, " ."))
	}
	if len(names) < 2 {
		return "", "", false
	}
	return names[0], names[1], true
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	rules, err := yoga.LoadRules(a.cfg.Yoga.RulesPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	disclaimed := map[string]bool{}
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Astro chat ready. Type 'exit' to stop.")
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		lower := strings.ToLower(question)
		if lower == "exit" || lower == "quit" {
			break
		}

		response := a.answerChat(ctx, question, lower, rules)

		if strings.Contains(lower, "profile:") {
			name := strings.ToLower(profileArg(question))
			if !disclaimed[name] {
				fmt.Println("Disclaimer: This is guidance and reflection, not medical, psychological, or financial advice.")
				disclaimed[name] = true
			}
		}
		fmt.Printf("astro> %s\n", response)
	}
	return scanner.Err()
}

// answerChat resolves one question to a response. Lookup failures come
// back as the response text so the loop keeps running.
func (a *app) answerChat(ctx context.Context, question, lower string, rules []yoga.Rule) string {
	switch {
	case strings.Contains(lower, "current dasha") && strings.Contains(lower, "profile:"):
		profile, err := a.profileWithChart(profileArg(question))
		if err != nil {
			return err.Error()
		}
		periods, err := a.dashaTimeline(profile)
		if err != nil {
			return err.Error()
		}
		maha, antar, pratyantar := a.engine.Locate(periods, time.Now().UTC())
		lord := func(p *model.DashaPeriod) string {
			if p == nil {
				return ""
			}
			return p.Lord
		}
		return a.renderer.DashaNow(ctx, lord(maha), lord(antar), lord(pratyantar))

	case strings.Contains(lower, "life overview") && strings.Contains(lower, "profile:"):
		profile, err := a.profileWithChart(profileArg(question))
		if err != nil {
			return err.Error()
		}
		detected := yoga.Detect(profile.Chart, rules)
		return a.renderer.ChartSummary(ctx, profile.Name, profile.Chart.LagnaSign, profile.Chart.MoonSign, yoga.Names(detected))

	case strings.Contains(lower, "compare") && strings.Contains(lower, "profile"):
		nameA, nameB, ok := compareArgs(question)
		if !ok {
			break
		}
		first, err := a.profileWithChart(nameA)
		if err != nil {
			return err.Error()
		}
		second, err := a.profileWithChart(nameB)
		if err != nil {
			return err.Error()
		}
		result, err := a.scorer.Score(first.Chart, second.Chart)
		if err != nil {
			return err.Error()
		}
		return a.renderer.Compatibility(ctx, result)
	}

	return "Please mention a command-style request with profile name."
}
