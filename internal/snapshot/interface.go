package snapshot

import "context"

// Source exposes one query per snapshot category. Implementations return
// an error both for "no data on this platform" and for genuine access
// failure; the assembler converts either into an unavailable field, so a
// missing sensor can never surface as a fake zero reading.
type Source interface {
	CPU(ctx context.Context) (CPUInfo, error)
	RAM(ctx context.Context) (RAMInfo, error)
	GPU(ctx context.Context) (GPUInfo, error)
	Disks(ctx context.Context) ([]Disk, error)
	Temperatures(ctx context.Context) ([]TemperatureReading, error)
	Drivers(ctx context.Context) ([]Driver, error)
	NetworkAdapters(ctx context.Context) ([]NetworkAdapter, error)
}

// Assembler builds a validated SystemSnapshot from a Source.
type Assembler interface {
	Assemble(ctx context.Context) (*SystemSnapshot, error)
}
