// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/validation"
	"bizstart-workers/pkg/registry"
)

const defaultRegistryPath = "pkg/registry/activities.json"

func main() {
	if len(os.Args) < 2 {
		help(os.Stdout)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		fs.Parse(os.Args[2:])
		err = listActivities(os.Stdout, *path)

	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		id := fs.String("id", "", "Activity ID to update")
		field := fs.String("field", "", "Field to update (version, displayName, description, timeout)")
		value := fs.String("value", "", "New value for the field")
		fs.Parse(os.Args[2:])
		if *id == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			fs.Usage()
			os.Exit(1)
		}
		if err = updateActivity(*path, *id, *field, *value); err == nil {
			fmt.Printf("Updated activity %s, field %s to %s\n", *id, *field, *value)
		}

	case "validate":
		fs := flag.NewFlagSet("validate", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		fs.Parse(os.Args[2:])
		err = validateRegistry(os.Stdout, *path)

	case "check":
		fs := flag.NewFlagSet("check", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		taskType := fs.String("task", "", "Task type whose input schema is used")
		input := fs.String("input", "", "Path to a JSON payload")
		fs.Parse(os.Args[2:])
		if *taskType == "" || *input == "" {
			fmt.Println("Error: task and input are required for check.")
			fs.Usage()
			os.Exit(1)
		}
		err = checkPayload(os.Stdout, *path, *taskType, *input)

	default:
		help(os.Stdout)
		return
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func listActivities(w io.Writer, path string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	for _, a := range reg.Activities {
		fmt.Fprintf(w, "%-24s %-10s %-6s %s\n", a.TaskType, a.Category, a.Timeout, a.DisplayName)
	}
	return nil
}

func updateActivity(path, id, field, value string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	var activity *registry.Activity
	for i := range reg.Activities {
		if reg.Activities[i].ID == id {
			activity = &reg.Activities[i]
			break
		}
	}
	if activity == nil {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	switch field {
	case "version":
		activity.Version = value
	case "displayName":
		activity.DisplayName = value
	case "description":
		activity.Description = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout value: %w", err)
		}
		activity.Timeout = value
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	reg.LastUpdated = time.Now().Format(time.RFC3339)
	return saveRegistry(reg, path)
}

// validateRegistry checks required fields, ID uniqueness, timeouts, declared error codes and
// that every input schema compiles.
func validateRegistry(w io.Writer, path string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if len(reg.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	ids := make(map[string]bool)
	for _, activity := range reg.Activities {
		if activity.ID == "" {
			return fmt.Errorf("activity missing required field: ID")
		}
		if ids[activity.ID] {
			return fmt.Errorf("duplicate activity ID: %s", activity.ID)
		}
		ids[activity.ID] = true

		if activity.TaskType == "" {
			return fmt.Errorf("activity %s missing required field: TaskType", activity.ID)
		}
		if activity.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: DisplayName", activity.ID)
		}
		if _, err := time.ParseDuration(activity.Timeout); err != nil {
			return fmt.Errorf("activity %s has invalid timeout %q", activity.ID, activity.Timeout)
		}
		for _, code := range activity.ErrorCodes {
			if !apperrors.IsKnownCode(code) {
				return fmt.Errorf("activity %s declares unknown error code %s", activity.ID, code)
			}
		}
	}

	if _, err := validation.NewValidator(reg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}

// checkPayload validates a JSON payload file against the input schema of taskType.
func checkPayload(w io.Writer, path, taskType, inputPath string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if _, ok := reg.Find(taskType); !ok {
		return fmt.Errorf("task type %s is not registered", taskType)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}

	v, err := validation.NewValidator(reg)
	if err != nil {
		return err
	}
	result, err := v.Check(taskType, payload)
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
		}
		return fmt.Errorf("payload does not match %s input schema", taskType)
	}

	fmt.Fprintf(w, "Payload is valid for %s.\n", taskType)
	return nil
}

func saveRegistry(reg *registry.ActivityRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

func help(w io.Writer) {
	fmt.Fprint(w, `
Usage: registry-updater <command> [flags]

Commands:
  list      List registered activities
  update    Update an activity's field
  validate  Validate the registry file and compile its input schemas
  check     Validate a JSON payload against an activity's input schema
  help      Show this help message

Examples:
  registry-updater update -id match-policy-funds -field timeout -value 20s
  registry-updater validate -path pkg/registry/activities.json
  registry-updater check -task analyze-viability -input payload.json
`)
}
