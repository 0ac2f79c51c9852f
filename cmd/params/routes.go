package main

import (
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/request-params/internal/config"
	"github.com/deppfellow/request-params/internal/handler"
	"github.com/deppfellow/request-params/internal/repository"
	"github.com/deppfellow/request-params/internal/router"
	"github.com/deppfellow/request-params/internal/server"
	"github.com/deppfellow/request-params/internal/service"
)

func routesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout())
		},
	}
}

// printRoutes builds the router with default config and writes its route
// table, sorted by path then method.
func printRoutes(w io.Writer) error {
	cfg := config.DefaultConfig()

	log := zerolog.Nop()
	srv, err := server.New(cfg, &log, nil)
	if err != nil {
		return err
	}

	services, err := service.NewService(srv, repository.NewRepositories(srv))
	if err != nil {
		return err
	}

	routes := router.NewRouter(srv, handler.NewHandlers(srv, services)).Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Method", "Path"})
	for _, route := range routes {
		if err := table.Append([]string{route.Method, route.Path}); err != nil {
			return err
		}
	}
	return table.Render()
}
