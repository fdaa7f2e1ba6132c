package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceReport описывает хост для benchmark.log и отчета -stats.
type ResourceReport struct {
	LogicalCores int
	TotalMemMB   uint64
	FreeMemMB    uint64
	CPUModel     string
}

// CollectResources собирает параметры хоста. Ошибки сбора не фатальны:
// недоступные поля остаются нулевыми.
func CollectResources() ResourceReport {
	r := ResourceReport{LogicalCores: runtime.NumCPU()}

	if n, err := cpu.Counts(true); err == nil && n > 0 {
		r.LogicalCores = n
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		r.CPUModel = infos[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		r.TotalMemMB = vm.Total / (1024 * 1024)
		r.FreeMemMB = vm.Available / (1024 * 1024)
	}
	return r
}

func (r ResourceReport) String() string {
	return fmt.Sprintf("cpu=%q cores=%d mem_total=%dMB mem_free=%dMB",
		r.CPUModel, r.LogicalCores, r.TotalMemMB, r.FreeMemMB)
}

// DefaultWorkers выбирает размер пула рендеринга: все логические ядра,
// но не больше восьми, чтобы не душить ffmpeg на больших машинах.
func DefaultWorkers() int {
	n := CollectResources().LogicalCores
	if n < 1 {
		n = 1
	}
	if n > 8 {
		n = 8
	}
	return n
}
