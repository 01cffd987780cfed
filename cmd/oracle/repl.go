package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"oracle/internal/catalog"
	"oracle/internal/config"
	"oracle/internal/history"
	"oracle/internal/i18n"
	"oracle/internal/model"
	"oracle/internal/pipeline"
	"oracle/internal/session"
)

// runREPL 行模式前端：每条命令同步驱动状态机与管线
// runREPL is the line-mode frontend: each command drives the state machine
// and pipelines synchronously
func runREPL(ctrl *session.Controller, insight *pipeline.Insight, reflection *pipeline.Reflection, cfg config.Config) error {
	in, inputErr := newLineInput(filepath.Join(cfg.Storage.DataDir, "repl.history"))
	if inputErr != nil {
		fmt.Fprintln(os.Stderr, i18n.T("repl.input_fallback", inputErr))
	}
	defer in.Close()

	out := os.Stdout
	fmt.Fprintln(out, i18n.T("repl.welcome", cfg.Storage.DataDir))
	fmt.Fprintln(out, i18n.T("repl.mode"))
	fmt.Fprintln(out, i18n.T("repl.help"))

	shake := time.Duration(cfg.UI.ShakeDurationMS) * time.Millisecond

	for {
		line, err := in.ReadLine("> ")
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(out)
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(out, i18n.T("repl.bye"))
				return nil
			default:
				return fmt.Errorf("read input: %w", err)
			}
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		cmd, rest := splitCommand(input)
		switch cmd {
		case "/draw":
			handleDraw(out, ctrl, shake)
		case "/mood":
			handleMood(out, ctrl, insight, rest)
		case "/wish":
			handleWish(out, ctrl, insight, rest)
		case "/todo":
			handleTodo(out, ctrl, rest)
		case "/review":
			ctrl.SetReflection(rest)
			fmt.Fprintln(out, "✓")
		case "/report":
			handleReport(out, ctrl, reflection)
		case "/history":
			handleHistory(out, ctrl, rest)
		case "/reset":
			ctrl.Reset()
			fmt.Fprintln(out, i18n.T("draw.prompt"))
		case "/help":
			printHelp(out)
		case "/exit", "/quit":
			fmt.Fprintln(out, i18n.T("repl.bye"))
			return nil
		default:
			fmt.Fprintln(out, i18n.T("repl.unknown", cmd))
		}
	}
}

func splitCommand(input string) (string, string) {
	parts := strings.SplitN(input, " ", 2)
	cmd := strings.ToLower(strings.TrimSpace(parts[0]))
	rest := ""
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	return cmd, rest
}

func handleDraw(out io.Writer, ctrl *session.Controller, shake time.Duration) {
	if !ctrl.BeginDraw() {
		// 仪表盘上要求重抽时先回到摇签 / redraw from the dashboard resets first
		ctrl.Reset()
		if !ctrl.BeginDraw() {
			return
		}
	}
	fmt.Fprintln(out, i18n.T("draw.shaking"))
	time.Sleep(shake)
	lot, ok := ctrl.FinishDraw()
	if !ok {
		return
	}
	printLot(out, lot)
	fmt.Fprintln(out, i18n.T("cmd.mood"))
}

func handleMood(out io.Writer, ctrl *session.Controller, insight *pipeline.Insight, rest string) {
	if ctrl.CurrentLot() == nil {
		fmt.Fprintln(out, i18n.T("repl.need_draw"))
		return
	}
	mood := model.MoodID(strings.ToLower(rest))
	if !catalog.ValidMood(mood) {
		fmt.Fprintln(out, i18n.T("repl.mood_values"))
		return
	}
	ctrl.BeginMoodSelect()
	req, ok := ctrl.SelectMood(mood)
	if !ok {
		return
	}
	runInsight(out, ctrl, insight, req)
}

func handleWish(out io.Writer, ctrl *session.Controller, insight *pipeline.Insight, rest string) {
	req, ok := ctrl.RefineIntention(rest)
	if !ok {
		if ctrl.CurrentLot() == nil {
			fmt.Fprintln(out, i18n.T("repl.need_draw"))
		} else {
			fmt.Fprintln(out, i18n.T("repl.need_mood"))
		}
		return
	}
	runInsight(out, ctrl, insight, req)
}

func runInsight(out io.Writer, ctrl *session.Controller, insight *pipeline.Insight, req session.InsightRequest) {
	fmt.Fprintln(out, i18n.T("loading.insight"))
	lot := req.Lot
	res, err := insight.Generate(context.Background(), &lot, req.Mood, req.Intention)
	ctrl.ApplyInsight(req.Token, res, err)

	fmt.Fprintln(out)
	fmt.Fprintln(out, i18n.T("oracle.interpretation"))
	fmt.Fprintln(out, "  "+ctrl.Interpretation())
	if rec := ctrl.Recommendation(); rec != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, i18n.T("oracle.recommendation"))
		printRecommendation(out, rec)
	}
}

func handleTodo(out io.Writer, ctrl *session.Controller, rest string) {
	action, arg := splitCommand(rest)
	switch action {
	case "add":
		if ctrl.AddTodo(arg) {
			fmt.Fprintln(out, i18n.T("repl.todo_added", arg))
		}
	case "done", "toggle":
		if todo, ok := todoByIndex(ctrl, arg); ok {
			ctrl.ToggleTodo(todo.ID)
		} else {
			fmt.Fprintln(out, i18n.T("repl.todo_none", arg))
		}
	case "rm", "remove":
		if todo, ok := todoByIndex(ctrl, arg); ok {
			ctrl.RemoveTodo(todo.ID)
		} else {
			fmt.Fprintln(out, i18n.T("repl.todo_none", arg))
		}
	default:
		printTodos(out, ctrl.Todos())
	}
}

func todoByIndex(ctrl *session.Controller, arg string) (model.Todo, bool) {
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	todos := ctrl.Todos()
	if err != nil || idx < 1 || idx > len(todos) {
		return model.Todo{}, false
	}
	return todos[idx-1], true
}

func handleReport(out io.Writer, ctrl *session.Controller, reflection *pipeline.Reflection) {
	req, ok := ctrl.BeginReport()
	if !ok {
		fmt.Fprintln(out, i18n.T("review.no_report"))
		return
	}
	fmt.Fprintln(out, i18n.T("loading.report"))
	text, err := reflection.Generate(context.Background(), req.Day)
	ctrl.ApplyReport(req.Token, text, err)
	if report := ctrl.Report(); report != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, i18n.T("review.report"))
		fmt.Fprintln(out, "  "+strings.ReplaceAll(report, "\n", "\n  "))
	} else {
		fmt.Fprintln(out, i18n.T("review.no_report"))
	}
}

func handleHistory(out io.Writer, ctrl *session.Controller, rest string) {
	key := strings.TrimSpace(rest)
	if key == "" {
		key = history.DateKey(time.Now())
	}
	entry, ok := ctrl.History()[key]
	if !ok {
		fmt.Fprintln(out, i18n.T("repl.no_entry", key))
		return
	}

	fmt.Fprintln(out, key)
	if entry.Lot != nil {
		printLot(out, *entry.Lot)
	}
	if entry.Mood != "" {
		fmt.Fprintln(out, "  "+catalog.MoodLabel(entry.Mood))
	}
	printTodos(out, entry.Todos)
	if strings.TrimSpace(entry.Reflection) != "" {
		fmt.Fprintln(out, "  "+entry.Reflection)
	}
	if strings.TrimSpace(entry.AIReport) != "" {
		fmt.Fprintln(out, i18n.T("review.report"))
		fmt.Fprintln(out, "  "+strings.ReplaceAll(entry.AIReport, "\n", "\n  "))
	}
}

func printLot(out io.Writer, lot model.Lot) {
	fmt.Fprintf(out, "\n  %s\n  %s\n  %s\n\n", lot.Title, lot.Description,
		i18n.T("result.lucky", lot.LuckyColor, lot.LuckyNumber))
}

func printRecommendation(out io.Writer, rec *model.Recommendation) {
	rows := []struct {
		label  string
		detail model.RecommendationDetail
	}{
		{i18n.T("oracle.rec_eat"), rec.Eat},
		{i18n.T("oracle.rec_wear"), rec.Wear},
		{i18n.T("oracle.rec_use"), rec.Use},
		{i18n.T("oracle.rec_action"), rec.Action},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "  %s %s · %s\n", row.label, row.detail.Title, row.detail.Description)
	}
}

func printTodos(out io.Writer, todos []model.Todo) {
	if len(todos) == 0 {
		fmt.Fprintln(out, "  "+i18n.T("todo.empty"))
		return
	}
	for i, t := range todos {
		box := "[ ]"
		suffix := ""
		if t.Completed {
			box = "[✓]"
			suffix = "  " + i18n.T("todo.done_at", t.CompletionTime, catalog.MoodLabel(t.CompletionMood))
		}
		fmt.Fprintf(out, "  %d. %s %s%s\n", i+1, box, t.Text, suffix)
	}
}

func printHelp(out io.Writer) {
	entries := []struct{ name, key string }{
		{"/draw", "cmd.draw"},
		{"/mood", "cmd.mood"},
		{"/wish", "cmd.wish"},
		{"/todo", "cmd.todo"},
		{"/review", "cmd.review"},
		{"/report", "cmd.report"},
		{"/history", "cmd.history"},
		{"/reset", "cmd.reset"},
		{"/help", "cmd.help"},
		{"/exit", "cmd.exit"},
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %-9s %s\n", e.name, i18n.T(e.key))
	}
}
