package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/WJQSERVER-STUDIO/go-utils/iox"
	"github.com/WJQSERVER-STUDIO/httpc"
	"github.com/fenthope/reco"
	"github.com/spf13/cobra"

	"github.com/infinite-iroha/pathmaker"
	"github.com/infinite-iroha/pathmaker/internal/config"
	"github.com/infinite-iroha/pathmaker/sitemap"
)

var errCheckFailed = errors.New("one or more routes failed")

// checkResult is the outcome of probing one route.
type checkResult struct {
	Name    string
	URL     string
	Status  int
	Skipped bool
	Err     error
}

func (r checkResult) ok() bool {
	return r.Skipped || (r.Err == nil && r.Status < http.StatusBadRequest)
}

// checker probes the sample URL of every route with a HEAD request.
type checker struct {
	client  *httpc.Client
	logger  *reco.Logger
	timeout time.Duration
}

func (c *checker) run(ctx context.Context, s *sitemap.Site) []checkResult {
	var results []checkResult
	_ = s.Walk(func(name string, b *pathmaker.Builder) error {
		results = append(results, c.probe(ctx, s, name, b))
		return nil
	})
	return results
}

func (c *checker) probe(ctx context.Context, s *sitemap.Site, name string, b *pathmaker.Builder) checkResult {
	res := checkResult{Name: name}
	u, err := s.Sample(name)
	if err != nil {
		res.Err = err
		return res
	}
	res.URL = u

	// routes that still carry tokens cannot be probed
	if len(pathmaker.Tokens(u, b.Delimiter(), b.TokenPrefix())) > 0 {
		res.Skipped = true
		c.debugf("check: %s skipped, unresolved tokens in %s", name, u)
		return res
	}

	timeout := c.timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		res.Err = err
		return res
	}
	resp, err := c.client.Do(req)
	if err != nil {
		res.Err = err
		c.warnf("check: %s %s: %v", name, u, err)
		return res
	}
	_, _ = iox.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	res.Status = resp.StatusCode
	if res.ok() {
		c.infof("check: %s %s %d", name, u, res.Status)
	} else {
		c.warnf("check: %s %s %d", name, u, res.Status)
	}
	return res
}

func (c *checker) debugf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

func (c *checker) infof(format string, args ...any) {
	if c.logger != nil {
		c.logger.Infof(format, args...)
	}
}

func (c *checker) warnf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Warnf(format, args...)
	}
}

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [sitemap]",
		Short: "Send a HEAD request to the sample URL of every route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSite(args)
			if err != nil {
				return err
			}
			c := &checker{
				client:  httpc.New(),
				logger:  a.logger,
				timeout: a.cfg.Timeout,
			}
			failed := 0
			for _, r := range c.run(cmd.Context(), s) {
				status := "skip"
				switch {
				case r.Err != nil:
					status = "error"
				case !r.Skipped:
					status = fmt.Sprint(r.Status)
				}
				if !r.ok() {
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s %s\n", status, r.Name, r.URL)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d", errCheckFailed, failed)
			}
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 0, "per request timeout (default from config, 5s)")
	_ = a.loader.Viper().BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	return cmd
}
