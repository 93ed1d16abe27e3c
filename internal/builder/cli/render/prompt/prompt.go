package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/cli/render"
	"github.com/glentner/1trc/internal/builder/cli/render/assets"
	"github.com/glentner/1trc/internal/builder/cli/streams"
)

const backNavigation = "back"

// Verify interface compliance in compile time.
var _ render.Renderer = (*Renderer)(nil)

type result struct {
	value string
	err   error
}

// Renderer type is implementation of renderer that using prompts.
type Renderer struct {
	useTTY  bool
	in      *streams.In
	out     *streams.Out
	scanner *bufio.Scanner
}

// NewRenderer creates Renderer object.
func NewRenderer(in *streams.In, out *streams.Out, useTTY bool) *Renderer {
	return &Renderer{
		useTTY:  useTTY,
		in:      in,
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// Logo function just display logo.
func (r *Renderer) Logo() {
	_, _ = fmt.Fprint(r.out, assets.LogoText)
}

// SelectionMenu function just display selection menu.
func (r *Renderer) SelectionMenu(ctx context.Context, title string, items []string) (string, error) {
	resultChan := make(chan result, 1)

	go func() {
		title = strings.TrimSpace(title)

		if r.useTTY {
			prompt := r.selectionPrompt(title, items)

			_, value, err := prompt.Run()
			if err != nil {
				resultChan <- result{err: errors.New(err.Error())}

				return
			}

			resultChan <- result{value: value}

			return
		}

		_, _ = fmt.Fprintln(r.out, title)

		itemsMap := make(map[string]string, len(items))

		for i, item := range items {
			itemsMap[strconv.Itoa(i+1)] = item
			_, _ = fmt.Fprintf(r.out, "%d. %s\n", i+1, item)
		}

		for {
			_, _ = fmt.Fprint(r.out, "Write a number: ")

			input, err := r.ReadLine()
			if err != nil {
				resultChan <- result{err: err}

				return
			}

			if !r.in.IsTerminal() {
				_, _ = fmt.Fprintf(r.out, "%s\n", input)
			}

			value, ok := itemsMap[input]
			if ok {
				_, _ = fmt.Fprintf(r.out, "Selected: %s\n", value)

				resultChan <- result{value: value}

				return
			}

			_, _ = fmt.Fprintln(r.out, "invalid input, please try again")
		}
	}()

	select {
	case <-ctx.Done():
		return "", errors.New(ctx.Err().Error())
	case res := <-resultChan:
		return res.value, res.err
	}
}

// InputMenu function just display input menu.
func (r *Renderer) InputMenu(ctx context.Context, title string, validateFunc func(string) error) (string, error) {
	resultChan := make(chan result, 1)

	go func() {
		title = strings.TrimSpace(title)

		if r.useTTY {
			prompt := r.stringInputPrompt(title, validateFunc)

			value, err := prompt.Run()
			if err != nil {
				resultChan <- result{err: errors.New(err.Error())}

				return
			}

			resultChan <- result{value: value}

			return
		}

		for {
			_, _ = fmt.Fprintf(r.out, "%s: ", title)

			input, err := r.ReadLine()
			if err != nil {
				resultChan <- result{err: err}

				return
			}

			if !r.in.IsTerminal() {
				_, _ = fmt.Fprintf(r.out, "%s\n", input)
			}

			err = validateFunc(input)
			if err == nil {
				resultChan <- result{value: input}

				return
			}

			_, _ = fmt.Fprintln(r.out, err.Error())
		}
	}()

	select {
	case <-ctx.Done():
		return "", errors.New(ctx.Err().Error())
	case res := <-resultChan:
		return res.value, res.err
	}
}

// WithSpinner starts spinner while function is running.
func (r *Renderer) WithSpinner(title string, fn func()) {
	if r.useTTY {
		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			defer cancel()
			fn()
		}()

		_ = spinner.New().
			Title(title).
			Context(ctx).
			Run()

		return
	}

	_, _ = fmt.Fprintln(r.out, title)

	fn()
}

// ReadLine reads input from stdin.
func (r *Renderer) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return strings.TrimSpace(r.scanner.Text()), nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", errors.New(err.Error())
	}

	return "", errors.New(io.EOF.Error())
}

// IsTerminal returns true if this stream is connected to a terminal.
func (r *Renderer) IsTerminal() bool {
	return r.in.IsTerminal()
}

func (r *Renderer) Read(p []byte) (int, error) {
	return r.in.Read(p)
}

// selectionPrompt returns prompt for selection items.
func (r *Renderer) selectionPrompt(title string, items []string) promptui.Select {
	templates := &promptui.SelectTemplates{
		Label: "{{ . }}",
		Active: fmt.Sprintf(
			"  {{ if eq . \"%s\" }}> {{ . | red }}{{ else }}> {{ . | cyan }}{{ end }}",
			backNavigation),
		Inactive: fmt.Sprintf(
			"{{ if eq . \"%s\" }}  {{ . | red }}{{ else }}  {{ . }}{{ end }}",
			backNavigation),
		Selected: "\U00002714 {{ . | green }}",
	}

	//nolint:mnd
	return promptui.Select{
		Stdin:     r.in,
		Stdout:    r.out,
		Label:     title,
		Items:     items,
		Templates: templates,
		HideHelp:  true,
		Size:      10,
	}
}

// stringInputPrompt returns prompt for string input.
func (r *Renderer) stringInputPrompt(title string, validateFunc func(string) error) promptui.Prompt {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} ",
		Success: "{{ . | bold }} ",
	}

	return promptui.Prompt{
		Stdin:     r.in,
		Stdout:    r.out,
		Label:     title,
		Templates: templates,
		Validate:  validateFunc,
	}
}
