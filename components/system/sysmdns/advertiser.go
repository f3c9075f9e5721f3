package sysmdns

import (
	"fmt"
	"os"

	"github.com/grandcat/zeroconf"

	"github.com/open-control-systems/clock-guard/components/core"
	"github.com/open-control-systems/clock-guard/components/status"
)

// AdvertiserParams represents various options for the mDNS service advertisement.
type AdvertiserParams struct {
	// Instance is a mDNS service instance name, host name is used if empty.
	Instance string

	// Service is a mDNS service name.
	//
	// Examples:
	//  - Time authority over HTTP: "_clockguard._tcp".
	Service string

	// Domain is a mDNS domain, "local." is used if empty.
	Domain string

	// Port is a port the service is available on.
	Port int

	// TxtRecords are key=value pairs, e.g. ["api_base_path=/api/", "api_version=v1"].
	TxtRecords []string
}

// Advertiser announces the service over the local network.
//
// References:
//   - https://github.com/grandcat/zeroconf
type Advertiser struct {
	params AdvertiserParams
	server *zeroconf.Server
}

// NewAdvertiser is an initialization of Advertiser.
//
// Remarks:
//   - The service is announced immediately, Close stops the announcement.
func NewAdvertiser(params AdvertiserParams) (*Advertiser, error) {
	params, err := normalizeParams(params)
	if err != nil {
		return nil, err
	}

	server, err := zeroconf.Register(
		params.Instance,
		params.Service,
		params.Domain,
		params.Port,
		params.TxtRecords,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("mdns-advertiser: failed to register service: %w", err)
	}

	core.LogInf.Printf("mdns-advertiser: service registered: instance=%s service=%s port=%d\n",
		params.Instance, params.Service, params.Port)

	return &Advertiser{
		params: params,
		server: server,
	}, nil
}

// Close stops the service announcement.
func (a *Advertiser) Close() error {
	a.server.Shutdown()

	core.LogInf.Printf("mdns-advertiser: service unregistered: instance=%s service=%s\n",
		a.params.Instance, a.params.Service)

	return nil
}

func normalizeParams(params AdvertiserParams) (AdvertiserParams, error) {
	if params.Service == "" {
		return params, fmt.Errorf("mdns-advertiser: empty service: %w", status.StatusInvalidState)
	}

	if params.Port <= 0 || params.Port > 65535 {
		return params, fmt.Errorf("mdns-advertiser: invalid port: port=%d: %w",
			params.Port, status.StatusInvalidState)
	}

	if params.Domain == "" {
		params.Domain = "local."
	}

	if params.Instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return params, fmt.Errorf("mdns-advertiser: failed to get hostname: %w", err)
		}

		params.Instance = hostname
	}

	return params, nil
}
