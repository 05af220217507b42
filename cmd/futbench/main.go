package main

import (
	"context"
	"time"

	"github.com/brendoncarroll/go-futures"
	"github.com/brendoncarroll/go-futures/execq"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var log = futures.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(hopCmd)

	chainCmd.Flags().IntVar(&chainLen, "len", 100000, "number of transformations in the chain")
	joinCmd.Flags().IntVar(&joinWidth, "width", 10000, "number of futures to join")
	hopCmd.Flags().IntVar(&hopCount, "hops", 100000, "number of hops between the two queues")
}

var rootCmd = &cobra.Command{
	Use:   "futbench",
	Short: "Timing tool for future chains, joins, and hops",
}

var chainLen int

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Build a long chain of transformations, resolve it, and time the resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if chainLen < 1 {
			return errors.Errorf("chain length must be positive, have %d", chainLen)
		}
		q := execq.New(execq.WithName("bench"))
		defer q.Close()

		p := futures.NewPromise[int](q)
		f := p.Future()
		for i := 0; i < chainLen; i++ {
			f = futures.Map(f, func(x int) int { return x + 1 })
		}
		start := time.Now()
		p.Succeed(0)
		out, err := f.Await(ctx)
		if err != nil {
			return err
		}
		cmd.Printf("chain len=%d result=%d elapsed=%v\n", chainLen, out, time.Since(start))
		return nil
	},
}

var joinWidth int

var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Join many futures and time the resolution of the last one",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if joinWidth < 1 {
			return errors.Errorf("join width must be positive, have %d", joinWidth)
		}
		q := execq.New(execq.WithName("bench"))
		defer q.Close()

		ps := make([]*futures.Promise[int], joinWidth)
		fs := make([]*futures.Future[int], joinWidth)
		for i := range ps {
			ps[i] = futures.NewPromise[int](q)
			fs[i] = ps[i].Future()
		}
		all := futures.AndAll(q, fs)
		start := time.Now()
		for i, p := range ps {
			p.Succeed(i)
		}
		if _, err := all.Await(ctx); err != nil {
			return err
		}
		cmd.Printf("join width=%d elapsed=%v\n", joinWidth, time.Since(start))
		return nil
	},
}

var hopCount int

var hopCmd = &cobra.Command{
	Use:   "hop",
	Short: "Bounce a future between two queues and time the resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if hopCount < 0 {
			return errors.Errorf("hop count cannot be negative, have %d", hopCount)
		}
		q1 := execq.New(execq.WithName("bench-1"))
		defer q1.Close()
		q2 := execq.New(execq.WithName("bench-2"))
		defer q2.Close()

		p := futures.NewPromise[int](q1)
		f := p.Future()
		for i := 0; i < hopCount; i++ {
			if i%2 == 0 {
				f = f.HopTo(q2)
			} else {
				f = f.HopTo(q1)
			}
		}
		start := time.Now()
		p.Succeed(1)
		out, err := f.Await(ctx)
		if err != nil {
			return err
		}
		cmd.Printf("hops=%d result=%d elapsed=%v\n", hopCount, out, time.Since(start))
		return nil
	},
}
