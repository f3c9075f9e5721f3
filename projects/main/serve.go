package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/clock-guard/components/core"
	"github.com/open-control-systems/clock-guard/components/http/htcore"
	"github.com/open-control-systems/clock-guard/components/system/sysmdns"
)

const mdnsService = "_clockguard._tcp"

func newServeCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the time authority and the verified time over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd.Context(), root.cfg)
			if err != nil {
				return err
			}
			defer env.Close()

			mux := http.NewServeMux()
			mux.Handle("/api/v1/time", htcore.NewTimeAuthorityHandler(nil))
			mux.Handle("/api/v1/time/verified", htcore.NewVerifiedTimeHandler(env.checker))

			server, err := htcore.NewServer(mux, htcore.ServerParams{
				Host: root.cfg.Server.Host,
				Port: root.cfg.Server.Port,
			})
			if err != nil {
				return err
			}
			env.closer.Add("http-server", server)

			server.Start()

			core.LogInf.Printf("http-server: started: url=%s\n", server.URL())

			if root.cfg.MDNS.Enabled {
				advertiser, err := sysmdns.NewAdvertiser(sysmdns.AdvertiserParams{
					Instance:   root.cfg.MDNS.Instance,
					Service:    mdnsService,
					Port:       server.Port(),
					TxtRecords: []string{"api_base_path=/api/", "api_version=v1"},
				})
				if err != nil {
					return err
				}
				env.closer.Add("mdns-advertiser", advertiser)
			}

			<-cmd.Context().Done()

			return nil
		},
	}

	cmd.Flags().String("host", "", "HTTP server host")
	cmd.Flags().Int("port", 0, "HTTP server port")
	cmd.Flags().Bool("mdns", false, "advertise the HTTP server over mDNS")

	return cmd
}
