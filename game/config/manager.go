package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/wricardo/snakes-ladders/game/command"
	"github.com/wricardo/snakes-ladders/game/engine"
	"github.com/wricardo/snakes-ladders/game/service"
)

// Extension is the file extension of scenario scripts
const Extension = ".snl"

var (
	ErrScenarioNotFound = service.ErrScenarioNotFound
	ErrInvalidScenario  = errors.New("invalid scenario")
)

// Manager handles scenario loading and caching
type Manager struct {
	scenarioDir     string
	defaultScenario *command.Script
	scenarios       map[string]*command.Script
	infos           map[string]*service.ScenarioInfo
	mu              sync.RWMutex
}

// NewManager creates a new scenario manager
func NewManager(scenarioDir string) (*Manager, error) {
	if _, err := os.Stat(scenarioDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("scenario directory does not exist: %s", scenarioDir)
	}

	m := &Manager{
		scenarioDir: scenarioDir,
		scenarios:   make(map[string]*command.Script),
		infos:       make(map[string]*service.ScenarioInfo),
	}

	if err := m.loadDefaultScenario(); err != nil {
		return nil, fmt.Errorf("failed to load default scenario: %w", err)
	}

	return m, nil
}

// LoadScenario loads a scenario by name
func (m *Manager) LoadScenario(name string) (*command.Script, error) {
	name = strings.TrimSuffix(name, Extension)

	m.mu.RLock()
	if script, exists := m.scenarios[name]; exists {
		m.mu.RUnlock()
		return script, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if script, exists := m.scenarios[name]; exists {
		return script, nil
	}

	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
	}

	data, err := os.ReadFile(filepath.Join(m.scenarioDir, name+Extension))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	script, info, err := parseAndValidate(name, data)
	if err != nil {
		return nil, err
	}

	m.scenarios[name] = script
	m.infos[name] = info
	return script, nil
}

// ListScenarios returns information about all valid scenarios in the directory
func (m *Manager) ListScenarios() ([]*service.ScenarioInfo, error) {
	entries, err := os.ReadDir(m.scenarioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var infos []*service.ScenarioInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), Extension)
		if _, err := m.LoadScenario(name); err != nil {
			// Skip invalid scenarios
			continue
		}

		m.mu.RLock()
		info := *m.infos[name]
		m.mu.RUnlock()
		infos = append(infos, &info)
	}

	return infos, nil
}

// GetDefault returns the default scenario
func (m *Manager) GetDefault() *command.Script {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultScenario
}

// SetDefault sets the default scenario by name
func (m *Manager) SetDefault(name string) error {
	script, err := m.LoadScenario(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultScenario = script
	return nil
}

// SaveScenario validates a script and writes it to the scenario directory
func (m *Manager) SaveScenario(name, content string) error {
	name = strings.TrimSuffix(name, Extension)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: invalid scenario name %q", ErrInvalidScenario, name)
	}

	script, info, err := parseAndValidate(name, []byte(content))
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(m.scenarioDir, name+Extension), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}

	m.mu.Lock()
	m.scenarios[name] = script
	m.infos[name] = info
	m.mu.Unlock()

	return nil
}

// loadDefaultScenario loads the default scenario
func (m *Manager) loadDefaultScenario() error {
	// Try to load classic as default
	script, err := m.LoadScenario("classic")
	if err != nil {
		infos, listErr := m.ListScenarios()
		if listErr != nil || len(infos) == 0 {
			m.setDefault(minimalScenario())
			return nil
		}

		script, err = m.LoadScenario(infos[0].ScenarioID)
		if err != nil {
			m.setDefault(minimalScenario())
			return nil
		}
	}

	m.setDefault(script)
	return nil
}

func (m *Manager) setDefault(script *command.Script) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultScenario = script
}

// Validate dry-runs a script on a scratch engine and reports the board it
// builds. Configuration errors make the script invalid.
func Validate(script *command.Script) (*service.ScenarioInfo, error) {
	e := engine.NewEngineWithDefaults()
	if _, err := command.NewRunner(e).Run(context.Background(), script.Commands); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	info := &service.ScenarioInfo{
		Name:        script.Name,
		Description: script.Description,
		Players:     len(e.GetPlayers()),
		Commands:    len(script.Commands),
	}
	if board := e.GetBoard(); board != nil {
		info.Width = board.Width()
		info.Height = board.Height()
	}
	return info, nil
}

func parseAndValidate(name string, data []byte) (*command.Script, *service.ScenarioInfo, error) {
	script, err := command.ParseScript(name, bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	info, err := Validate(script)
	if err != nil {
		return nil, nil, err
	}
	info.Filename = name + Extension
	info.ScenarioID = name
	return script, info, nil
}

// minimalScenario creates a small valid scenario used when the directory has none
func minimalScenario() *command.Script {
	script, _ := command.ParseScript("default", strings.NewReader(strings.Join([]string{
		"# name: default",
		"# description: Default minimal scenario",
		"board 5 5",
		"players 2",
		"dice 1 2 3 4 5 6",
		"ladder 3 11",
		"ladder 8 19",
		"snake 17 4",
		"snake 24 13",
		"powerup antivenom 6",
		"powerup escalator 2",
	}, "\n")))
	return script
}
