package session

import (
	"fmt"
	"strconv"
)

// Calculator is one menu entry.
type Calculator struct {
	Key   string
	Name  string
	Title string
	Run   func(s *Session)
}

type Registry struct {
	calculators []Calculator
	byKey       map[string]int
	byName      map[string]int
}

func NewRegistry() *Registry {
	r := &Registry{
		byKey:  make(map[string]int),
		byName: make(map[string]int),
	}

	r.mustRegister(Calculator{
		Name:  "gas",
		Title: "Solve Ideal Gas Law (PV=nRT)",
		Run:   (*Session).RunGas,
	})
	r.mustRegister(Calculator{
		Name:  "flow",
		Title: "Calculate Reynolds Number (Pipe Flow)",
		Run:   (*Session).RunFlow,
	})

	return r
}

// Register adds c under the next free menu number unless c.Key is set.
// Keys and names must be unique, and a key may not take the exit choice.
func (r *Registry) Register(c Calculator) error {
	if c.Key == "" {
		c.Key = strconv.Itoa(len(r.calculators) + 1)
	}
	if _, ok := r.byKey[c.Key]; ok {
		return fmt.Errorf("calculator key %s already registered", c.Key)
	}
	if _, ok := r.byName[c.Name]; ok {
		return fmt.Errorf("calculator %s already registered", c.Name)
	}
	if c.Key == strconv.Itoa(len(r.calculators)+2) {
		return fmt.Errorf("calculator key %s is the exit choice", c.Key)
	}
	r.byKey[c.Key] = len(r.calculators)
	r.byName[c.Name] = len(r.calculators)
	r.calculators = append(r.calculators, c)
	return nil
}

func (r *Registry) mustRegister(c Calculator) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(key string) (Calculator, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Calculator{}, false
	}
	return r.calculators[i], true
}

func (r *Registry) GetByName(name string) (Calculator, error) {
	i, ok := r.byName[name]
	if !ok {
		return Calculator{}, fmt.Errorf("unknown calculator: %s", name)
	}
	return r.calculators[i], nil
}

// List returns the calculators in menu order.
func (r *Registry) List() []Calculator {
	out := make([]Calculator, len(r.calculators))
	copy(out, r.calculators)
	return out
}

// ExitKey is the menu choice that ends the session.
func (r *Registry) ExitKey() string {
	return strconv.Itoa(len(r.calculators) + 1)
}

// Choices lists every valid menu key, exit included.
func (r *Registry) Choices() []string {
	keys := make([]string, 0, len(r.calculators)+1)
	for _, c := range r.calculators {
		keys = append(keys, c.Key)
	}
	return append(keys, r.ExitKey())
}
