package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"snake-autopilot/game/entity"
	"snake-autopilot/game/types"
	"snake-autopilot/logging"
	"snake-autopilot/planner"
)

var ErrInvalidInput = errors.New("invalid input")

type planOptions struct {
	height int
	width  int
	walls  string
	mode   string
	safety bool
	budget int
	body   string
	target string
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan one route for a given snake and target",
		Long: `Plan a single route. The body is listed head first as row,col pairs
separated by spaces. Prints the route, or why there is none.`,
		Example: `  snake-autopilot plan --height 5 --width 5 --walls wrap --body "2,2 2,1 2,0" --target 2,4
  snake-autopilot plan --mode survival-tail --safety --body "1,0 1,1 1,2 2,2" --target 0,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return planRoute(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.height, "height", 20, "grid rows")
	f.IntVar(&opts.width, "width", 30, "grid columns")
	f.StringVar(&opts.walls, "walls", "bounded", "wall policy (bounded, wrap)")
	f.StringVarP(&opts.mode, "mode", "m", "shortest", "planning mode (shortest, survival-longest, survival-tail)")
	f.BoolVar(&opts.safety, "safety", false, "reject routes that leave too little room")
	f.IntVar(&opts.budget, "budget", planner.DefaultExpansionBudget, "expansion budget for survival-longest")
	f.StringVar(&opts.body, "body", "", "snake body, head first, e.g. \"2,2 2,1\"")
	f.StringVar(&opts.target, "target", "", "target cell as row,col")
	_ = cmd.MarkFlagRequired("body")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func parseBody(grid types.Grid, s string) ([]types.Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidInput)
	}
	body := make([]types.Point, 0, len(fields))
	for _, field := range fields {
		p, err := types.ParsePoint(field)
		if err != nil {
			return nil, err
		}
		if !grid.Contains(p) {
			return nil, fmt.Errorf("%w: body cell %s is outside the grid", ErrInvalidInput, p)
		}
		body = append(body, p)
	}
	return body, nil
}

func planRoute(cmd *cobra.Command, opts *planOptions) error {
	walls, err := types.ParseWallPolicy(opts.walls)
	if err != nil {
		return err
	}
	mode, err := planner.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	grid, err := types.NewGrid(opts.height, opts.width, walls)
	if err != nil {
		return err
	}

	body, err := parseBody(grid, opts.body)
	if err != nil {
		return err
	}
	target, err := types.ParsePoint(opts.target)
	if err != nil {
		return err
	}
	if !grid.Contains(target) {
		return fmt.Errorf("%w: target %s is outside the grid", ErrInvalidInput, target)
	}

	snake, err := entity.NewSnakeFromBody(body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	p, err := planner.New(grid, planner.Options{
		Mode:            mode,
		SafetyCheck:     opts.safety,
		ExpansionBudget: opts.budget,
	}, logging.Discard())
	if err != nil {
		return err
	}

	route, err := p.Plan(snake, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d steps)\n", route, route.Steps())
	return nil
}
