package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Confirm prints question and waits for a yes/no answer, respecting context
// cancellation. Empty input and EOF both count as no.
func Confirm(ctx context.Context, reader io.Reader, writer io.Writer, question string) (bool, error) {
	fmt.Fprint(writer, question+" [y/N]: ")

	type result struct {
		err  error
		text string
	}
	resultChan := make(chan result, 1)

	go func() {
		line, err := bufio.NewReader(reader).ReadString('\n')
		resultChan <- result{text: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInputCancelled
	case res := <-resultChan:
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", res.err)
		}
		answer := strings.ToLower(strings.TrimSpace(res.text))
		return answer == "y" || answer == "yes", nil
	}
}
