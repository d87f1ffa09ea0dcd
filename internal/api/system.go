package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemInfo is the response body for GET /api/system-info.
//
// Host fields degrade to "Unknown" or zero when the platform probe fails;
// the endpoint itself never fails on probe errors.
type SystemInfo struct {
	SystemName        string `json:"system_name"`
	SystemVersion     string `json:"system_version"`
	KernelVersion     string `json:"kernel_version"`
	Hostname          string `json:"hostname"`
	Architecture      string `json:"architecture"`
	CPUCores          int    `json:"cpu_cores"`
	TotalMemory       uint64 `json:"total_memory"`
	AvailableMemory   uint64 `json:"available_memory"`
	BootTime          uint64 `json:"boot_time"`
	Uptime            uint64 `json:"uptime"`
	CurrentTime       string `json:"current_time"`
	AppVersion        string `json:"app_version"`
	DatabaseConnected bool   `json:"database_connected"`
	ServerAddress     string `json:"server_address"`
	ServerPort        int    `json:"server_port"`
}

// handleSystemInfo reports a snapshot of the host and service state.
func (s *Server) handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info := SystemInfo{
		SystemName:    "Unknown",
		SystemVersion: "Unknown",
		KernelVersion: "Unknown",
		Hostname:      "Unknown",
		Architecture:  runtime.GOARCH,
		CPUCores:      runtime.NumCPU(),
		CurrentTime:   time.Now().UTC().Format(time.RFC3339),
		AppVersion:    s.version,
		ServerAddress: s.cfg.Host,
		ServerPort:    s.cfg.Port,
	}

	if hostInfo, err := host.InfoWithContext(ctx); err == nil {
		info.SystemName = hostInfo.Platform
		info.SystemVersion = hostInfo.PlatformVersion
		info.KernelVersion = hostInfo.KernelVersion
		info.Hostname = hostInfo.Hostname
		info.BootTime = hostInfo.BootTime
		info.Uptime = hostInfo.Uptime
	} else {
		s.logger.Warn("host info probe failed", "error", err)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalMemory = vm.Total
		info.AvailableMemory = vm.Available
	} else {
		s.logger.Warn("memory probe failed", "error", err)
	}

	info.DatabaseConnected = s.db.HealthCheck(ctx) == nil

	writeJSON(w, http.StatusOK, info)
}
