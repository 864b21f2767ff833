package cli

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"carrental/internal/company"
	"carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/logger"
)

var errQuit = errors.New("quit")

func newCompanyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "company",
		Short: "Manage rentals from the console",
		Long: `Reads one command per line from standard input. Fields are comma separated.

  add,<name>,<car id>,<type A-D>,<brand>,<manual|auto>,<pick dd/mm/yyyy>,<return dd/mm/yyyy>
  remove,<return dd/mm/yyyy>
  stats
  report
  quit

The final report is printed on quit or at end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(a.cfg, cmd.OutOrStdout())
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// session is one console run over a single company
type session struct {
	company *company.Company
	cfg     *config.Config
	out     io.Writer
	log     *slog.Logger
}

func newSession(cfg *config.Config, out io.Writer) *session {
	return &session{
		company: company.New(),
		cfg:     cfg,
		out:     out,
		log:     logger.WithCommand("company"),
	}
}

func (s *session) prompt() {
	if s.cfg.Console.Prompt != "" {
		fmt.Fprint(s.out, s.cfg.Console.Prompt)
	}
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	s.log.InfoContext(ctx, "Session started", "report_format", s.cfg.Report.Format)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	s.prompt()
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			s.prompt()
			continue
		}

		err := s.handle(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			s.log.WarnContext(ctx, "Malformed input", "line", lineNo, "error", err)
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		s.prompt()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if err := s.report(); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "Session finished", "rents", s.company.NumOfRents())
	return nil
}

func splitFields(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid line: %w", err)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

func (s *session) handle(line string) error {
	fields, err := splitFields(line)
	if err != nil {
		return err
	}

	switch strings.ToLower(fields[0]) {
	case "add":
		return s.add(fields[1:])
	case "remove":
		return s.remove(fields[1:])
	case "stats":
		s.stats()
		return nil
	case "report":
		return s.report()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseGear(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "manual":
		return true, nil
	case "auto", "automatic":
		return false, nil
	default:
		return false, fmt.Errorf("invalid gear %q, expected manual or auto", s)
	}
}

func (s *session) add(fields []string) error {
	if len(fields) != 7 {
		return fmt.Errorf("add expects 7 fields, got %d", len(fields))
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid car id: %w", err)
	}
	carType, err := domain.ParseCarType(fields[2])
	if err != nil {
		return err
	}
	manual, err := parseGear(fields[4])
	if err != nil {
		return err
	}
	pick, err := domain.ParseDate(fields[5])
	if err != nil {
		return fmt.Errorf("invalid pick date: %w", err)
	}
	ret, err := domain.ParseDate(fields[6])
	if err != nil {
		return fmt.Errorf("invalid return date: %w", err)
	}

	car := domain.NewCar(id, carType, fields[3], manual)
	if s.company.AddRent(fields[0], &car, &pick, &ret) {
		fmt.Fprintln(s.out, "added")
	} else {
		fmt.Fprintln(s.out, "rejected")
	}
	return nil
}

func (s *session) remove(fields []string) error {
	if len(fields) != 1 {
		return fmt.Errorf("remove expects 1 field, got %d", len(fields))
	}
	d, err := domain.ParseDate(fields[0])
	if err != nil {
		return err
	}
	if s.company.RemoveRent(d) {
		fmt.Fprintln(s.out, "removed")
	} else {
		fmt.Fprintln(s.out, "not found")
	}
	return nil
}

func (s *session) stats() {
	c := s.company
	fmt.Fprintf(s.out, "rents: %d\n", c.NumOfRents())
	fmt.Fprintf(s.out, "total price: %d\n", c.SumOfPrices())
	fmt.Fprintf(s.out, "total days: %d\n", c.SumOfDays())
	fmt.Fprintf(s.out, "average days: %.2f\n", c.AverageRent())

	if car, ok := c.LastCarRent(); ok {
		fmt.Fprintf(s.out, "last car: %s\n", car)
	} else {
		fmt.Fprintln(s.out, "last car: none")
	}
	if longest := c.LongestRent(); longest != nil {
		fmt.Fprintf(s.out, "longest: %s\n", longest)
	} else {
		fmt.Fprintln(s.out, "longest: none")
	}
	fmt.Fprintf(s.out, "most common type: %s\n", c.MostCommonRate())
}

func (s *session) report() error {
	if s.cfg.Report.Format == config.ReportFormatYAML {
		data, err := s.company.YAML()
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = s.out.Write(data)
		return err
	}

	text := s.company.String()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(s.out, text)
	return err
}
