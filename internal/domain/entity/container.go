package entity

import (
	"errors"
	"sort"
	"strings"
)

// Container mirrors the subset of `docker inspect` output kitematic edits.
// Names are stored without Docker's leading slash.
type Container struct {
	ID              string           `json:"Id"`
	Name            string           `json:"Name"`
	Config          *Config          `json:"Config,omitempty"`
	HostConfig      *HostConfig      `json:"HostConfig,omitempty"`
	NetworkSettings *NetworkSettings `json:"NetworkSettings,omitempty"`
	State           State            `json:"State"`
}

// Config is the container's create-time configuration.
type Config struct {
	Env          []string            `json:"Env,omitempty"`
	Tty          bool                `json:"Tty"`
	OpenStdin    bool                `json:"OpenStdin"`
	ExposedPorts map[string]struct{} `json:"ExposedPorts,omitempty"`
}

// HostConfig is the container's runtime configuration.
type HostConfig struct {
	Links        []string                 `json:"Links"`
	PortBindings map[string][]PortBinding `json:"PortBindings,omitempty"`
	Privileged   bool                     `json:"Privileged"`
}

// NetworkSettings holds the published ports of a running container.
type NetworkSettings struct {
	Ports map[string][]PortBinding `json:"Ports,omitempty"`
}

// PortBinding is one host binding of a container port.
type PortBinding struct {
	HostIP   string `json:"HostIp,omitempty"`
	HostPort string `json:"HostPort"`
}

// State is the container's lifecycle state.
type State struct {
	Running  bool `json:"Running"`
	Updating bool `json:"Updating,omitempty"`
}

// Link is a (container name, alias) pair as edited in the links panel.
type Link struct {
	Container string
	Alias     string
}

// Mode reports the foreground options of a container.
type Mode struct {
	Tty        bool
	OpenStdin  bool
	Privileged bool
}

// PortInfo describes how a container port is reachable from the host.
type PortInfo struct {
	URL      string
	IP       string
	Port     string
	PortType string
}

var ErrInvalidContainer = errors.New("invalid container")

// NormalizeName strips the leading slash Docker prefixes names with.
func NormalizeName(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "/")
}

func (c *Container) Validate() error {
	if c == nil || c.ID == "" || NormalizeName(c.Name) == "" {
		return ErrInvalidContainer
	}
	return nil
}

// Env splits each KEY=VALUE entry on its first '='.
// Entries without '=' keep the whole string as key.
func Env(c *Container) [][2]string {
	if c == nil || c.Config == nil || len(c.Config.Env) == 0 {
		return [][2]string{}
	}
	out := make([][2]string, 0, len(c.Config.Env))
	for _, kv := range c.Config.Env {
		key, val, _ := strings.Cut(kv, "=")
		out = append(out, [2]string{key, val})
	}
	return out
}

// ContainerMode returns tty, stdin and privileged flags; absent config
// defaults to an interactive, unprivileged container.
func ContainerMode(c *Container) Mode {
	m := Mode{Tty: true, OpenStdin: true}
	if c != nil && c.Config != nil {
		m.Tty = c.Config.Tty
		m.OpenStdin = c.Config.OpenStdin
	}
	if c != nil && c.HostConfig != nil {
		m.Privileged = c.HostConfig.Privileged
	}
	return m
}

// Links parses HostConfig.Links entries of the form "/db:/web/alias".
// The key starts after the first '/' when it precedes ':'; the alias
// starts after the last '/' when it follows ':'.
func Links(c *Container) []Link {
	if c == nil || c.HostConfig == nil || len(c.HostConfig.Links) == 0 {
		return []Link{}
	}
	out := make([]Link, 0, len(c.HostConfig.Links))
	for _, raw := range c.HostConfig.Links {
		out = append(out, ParseLink(raw))
	}
	return out
}

// ParseLink parses a single HostConfig.Links entry.
func ParseLink(raw string) Link {
	colon := strings.Index(raw, ":")
	if colon < 0 {
		return Link{Container: strings.TrimPrefix(raw, "/"), Alias: ""}
	}

	keyStart := 0
	if slash := strings.Index(raw, "/"); slash != -1 && slash < colon {
		keyStart = slash + 1
	}
	valStart := colon + 1
	if slash := strings.LastIndex(raw, "/"); slash != -1 && slash > colon {
		valStart = slash + 1
	}

	return Link{Container: raw[keyStart:colon], Alias: raw[valStart:]}
}

// FormatLinks renders links as "name:alias" for HostConfig.Links.
// Rows missing either side are dropped; a repeated container keeps its
// first position and takes the last alias given for it.
func FormatLinks(links []Link) []string {
	var (
		list []string
		pos  = map[string]int{}
	)
	for _, l := range links {
		if l.Container == "" || l.Alias == "" {
			continue
		}
		entry := l.Container + ":" + l.Alias
		if i, ok := pos[l.Container]; ok {
			list[i] = entry
			continue
		}
		pos[l.Container] = len(list)
		list = append(list, entry)
	}
	return list
}

// Ports resolves published ports against host. Running containers use
// NetworkSettings.Ports, then HostConfig.PortBindings, then exposed ports.
func Ports(c *Container, host string) map[string]PortInfo {
	res := map[string]PortInfo{}
	if c == nil || c.NetworkSettings == nil {
		return res
	}

	ports := c.NetworkSettings.Ports
	if ports == nil && c.HostConfig != nil && c.HostConfig.PortBindings != nil {
		ports = c.HostConfig.PortBindings
	}
	if ports == nil && c.Config != nil {
		ports = make(map[string][]PortBinding, len(c.Config.ExposedPorts))
		for p := range c.Config.ExposedPorts {
			ports[p] = nil
		}
	}

	for key, bindings := range ports {
		dockerPort, portType, _ := strings.Cut(key, "/")
		info := PortInfo{IP: host, PortType: portType}
		if len(bindings) > 0 {
			info.Port = bindings[0].HostPort
		}
		if info.Port != "" {
			info.URL = host + ":" + info.Port
		} else {
			info.URL = host + ":<not set>"
		}
		res[dockerPort] = info
	}
	return res
}

// SortedPortKeys returns the keys of a Ports result in lexical order.
func SortedPortKeys(ports map[string]PortInfo) []string {
	keys := make([]string, 0, len(ports))
	for k := range ports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
