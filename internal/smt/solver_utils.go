package smt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// runSession drives one interactive SMT-LIB2 session against a solver process:
// the instance and (check-sat) are fed into the solver's standard input, the
// verdict line is read back, and only on a sat verdict are the variable
// assignments requested with (get-value ...).
func runSession(cmd *exec.Cmd, instance Instance) (Result, Model, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return Unknown, nil, fmt.Errorf("cannot open solver input pipe: %v", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Unknown, nil, fmt.Errorf("cannot open solver output pipe: %v", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Unknown, nil, fmt.Errorf("cannot start solver process: %v", err)
	}

	reader := bufio.NewReader(stdout)

	io.WriteString(stdin, instance.ToSMTLIB())
	io.WriteString(stdin, "(check-sat)\n")

	verdictLine, err := reader.ReadString('\n')
	if err != nil {
		stdin.Close()
		cmd.Wait()
		return Unknown, nil, fmt.Errorf("cannot read solver verdict: %v : %v", err, stderr.String())
	}

	switch verdict := strings.TrimSpace(verdictLine); verdict {
	case "unsat":
		return Unsat, nil, finishSession(stdin, cmd, &stderr)
	case "unknown":
		return Unknown, nil, finishSession(stdin, cmd, &stderr)
	case "sat":
	default:
		stdin.Close()
		cmd.Wait()
		return Unknown, nil, fmt.Errorf("unexpected solver verdict %q : %v", verdict, stderr.String())
	}

	fmt.Fprintf(stdin, "(get-value (%v))\n", strings.Join(instance.VariableNames(), " "))
	stdin.Close()

	output, err := io.ReadAll(reader)
	if err != nil {
		cmd.Wait()
		return Unknown, nil, fmt.Errorf("cannot read solver model: %v : %v", err, stderr.String())
	}
	if err := cmd.Wait(); err != nil {
		return Unknown, nil, fmt.Errorf("solver process failed: %v : %v", err, stderr.String())
	}

	model, err := parseModel(string(output))
	if err != nil {
		return Unknown, nil, err
	}
	return Sat, model, nil
}

func finishSession(stdin io.WriteCloser, cmd *exec.Cmd, stderr *bytes.Buffer) error {
	stdin.Close()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("solver process failed: %v : %v", err, stderr.String())
	}
	return nil
}

// parseModel reads the (get-value ...) response, a flat list of (name value)
// pairs where value is true, false, an integer literal or a negated literal
// of the form (- k).
func parseModel(solverOutput string) (Model, error) {
	replacer := strings.NewReplacer("(", " ( ", ")", " ) ")
	tokens := strings.Fields(replacer.Replace(solverOutput))

	model := make(Model)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if token == "(" || token == ")" {
			continue
		}
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("truncated solver model near %q", token)
		}

		switch next := tokens[i+1]; next {
		case "true":
			model[token] = 1
			i++
		case "false":
			model[token] = 0
			i++
		case "(":
			if i+4 >= len(tokens) || tokens[i+2] != "-" || tokens[i+4] != ")" {
				return nil, fmt.Errorf("invalid value for %q in solver model", token)
			}
			value, err := strconv.ParseInt(tokens[i+3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q in solver model: %v", tokens[i+3], err)
			}
			model[token] = -value
			i += 4
		default:
			value, err := strconv.ParseInt(next, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for %q in solver model", next, token)
			}
			model[token] = value
			i++
		}
	}
	return model, nil
}
