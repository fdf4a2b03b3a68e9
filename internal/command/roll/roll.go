package roll

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/keshon/slashy/internal/command"
	"github.com/keshon/slashy/internal/middleware"
	"github.com/keshon/slashy/pkg/args"
)

var (
	tokenRegex = regexp.MustCompile(`(?i)(\d*d\d+|\d+|[+\-*/])`)
	diceRegex  = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)
	validOps   = map[string]bool{"+": true, "-": true, "*": true, "/": true}
)

type term struct {
	value int
	desc  string
	op    string
}

// Result is an evaluated formula.
type Result struct {
	Total   int
	Details string
}

func Roll() *command.Command {
	return &command.Command{
		CommandName:        "roll",
		CommandDescription: "Roll dices like `2d20+1d6-2`",
		CategoryName:       "🎲 Gameplay",
		Tree: args.MustTree("roll",
			args.Arg("formula", args.KindString, true).WithDescription("Supports `2d6+1d4*2-3` and similar math"),
		),
		Handlers: map[args.HandlerID]command.HandlerFunc{
			"roll": runRoll,
		},
	}
}

func runRoll(_ context.Context, c *command.Context, a args.Values) error {
	formula, ok := a.String("formula")
	if !ok {
		return c.ReplyEphemeral("Give me a formula like `2d6+1d4*2-3`.")
	}

	res, err := Evaluate(formula, rand.Intn)
	if err != nil {
		return c.ReplyEphemeral(err.Error())
	}
	return c.Reply("🎲 Dice Roll", fmt.Sprintf(
		"**User Input**:\t`%s`\n**Calculation**:\t%s\n**Result**:\t**%d**",
		formula, res.Details, res.Total,
	))
}

// Evaluate rolls formula. intn(n) must return a value in [0, n).
func Evaluate(formula string, intn func(int) int) (Result, error) {
	formula = strings.ReplaceAll(formula, " ", "")
	tokens := tokenRegex.FindAllString(formula, -1)
	if len(tokens) == 0 {
		return Result{}, errors.New("Can't parse your formula. Try something like `2d6+1d4*2-3`")
	}

	var terms []term
	currentOp := "+"
	for _, token := range tokens {
		if validOps[token] {
			currentOp = token
			continue
		}
		val, desc, err := evaluateToken(token, intn)
		if err != nil {
			return Result{}, fmt.Errorf("Failed to evaluate `%s`: %v", token, err)
		}
		terms = append(terms, term{value: val, desc: desc, op: currentOp})
	}

	// * and / bind to the previous term first.
	var merged []term
	for _, t := range terms {
		if t.op != "*" && t.op != "/" {
			merged = append(merged, t)
			continue
		}
		if len(merged) == 0 {
			return Result{}, errors.New("Can't multiply or divide by nothing.")
		}
		prev := merged[len(merged)-1]
		if t.op == "/" && t.value == 0 {
			return Result{}, errors.New("Can't divide by zero.")
		}
		if t.op == "*" {
			prev.value *= t.value
		} else {
			prev.value /= t.value
		}
		prev.desc = fmt.Sprintf("%s %s %s", prev.desc, t.op, t.desc)
		merged[len(merged)-1] = prev
	}

	var res Result
	var details []string
	for _, t := range merged {
		if len(details) > 0 {
			details = append(details, fmt.Sprintf(" %s ", t.op))
		}
		details = append(details, t.desc)
		if t.op == "-" {
			res.Total -= t.value
		} else {
			res.Total += t.value
		}
	}
	res.Details = strings.Join(details, "")
	return res, nil
}

func evaluateToken(token string, intn func(int) int) (int, string, error) {
	matches := diceRegex.FindStringSubmatch(token)
	if matches == nil {
		num, err := strconv.Atoi(token)
		if err != nil {
			return 0, "", fmt.Errorf("not a number or dice")
		}
		return num, fmt.Sprintf("`%d`", num), nil
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid dice count")
		}
		count = n
	}
	sides, err := strconv.Atoi(matches[2])
	if err != nil || sides < 2 {
		return 0, "", fmt.Errorf("invalid dice sides")
	}
	if count > 100 || sides > 1000 {
		return 0, "", fmt.Errorf("too big. max 100 dice, 1000 sides")
	}

	var sum int
	rolls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		r := intn(sides) + 1
		sum += r
		rolls = append(rolls, strconv.Itoa(r))
	}
	return sum, fmt.Sprintf("`%s` [%s]", token, strings.Join(rolls, ", ")), nil
}

func init() {
	command.Register(Roll(),
		middleware.WithGuildOnly(),
		middleware.WithRateLimit(),
		middleware.WithCommandLogger(),
	)
}
