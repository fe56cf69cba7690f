package config

import "sort"

func (c *Config) GetFluid(name string) *FluidConfig {
	f, ok := c.Fluids[name]
	if !ok {
		return nil
	}
	return &f
}

// ListFluids returns the reference fluid names in sorted order.
func (c *Config) ListFluids() []string {
	if len(c.Fluids) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Fluids))
	for name := range c.Fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
