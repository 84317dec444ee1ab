// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/validation"
	"ai-readiness-workers/pkg/registry"
)

const defaultRegistryPath = "pkg/registry/activity-registry.json"

func main() {
	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")

	switch command {
	case "list":
		if err := fs.Parse(args); err != nil {
			return err
		}
		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		return listActivities(reg, out)

	case "show":
		taskType := fs.String("taskType", "", "Task type to show")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *taskType == "" {
			return fmt.Errorf("taskType is required for show")
		}
		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		return showActivity(reg, *taskType, out)

	case "update":
		id := fs.String("id", "", "Activity ID to update")
		field := fs.String("field", "", "Field to update (status, version, displayName, description, timeout, retries)")
		value := fs.String("value", "", "New value for the field")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" || *field == "" || *value == "" {
			return fmt.Errorf("id, field, and value are required for update")
		}
		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		if err := updateActivity(reg, *id, *field, *value); err != nil {
			return err
		}
		if err := validateRegistry(reg); err != nil {
			return fmt.Errorf("update leaves registry invalid: %w", err)
		}
		reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)
		if err := saveRegistry(reg, *path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Updated activity %s, field %s to %s\n", *id, *field, *value)
		return nil

	case "validate":
		if err := fs.Parse(args); err != nil {
			return err
		}
		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		if err := validateRegistry(reg); err != nil {
			return fmt.Errorf("registry validation failed: %w", err)
		}
		fmt.Fprintf(out, "Registry validation passed. Found %d activities.\n", len(reg.Activities))
		return nil

	case "help", "-h", "--help":
		help()
		return nil

	default:
		help()
		return fmt.Errorf("unknown command %q", command)
	}
}

func listActivities(reg *registry.ActivityRegistry, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTASK TYPE\tCATEGORY\tSTATUS\tTIMEOUT\tRETRIES")
	for _, a := range reg.Activities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", a.ID, a.TaskType, a.Category, a.ImplementationStatus, a.Timeout, a.Retries)
	}
	return tw.Flush()
}

func showActivity(reg *registry.ActivityRegistry, taskType string, out io.Writer) error {
	a, ok := reg.FindByTaskType(taskType)
	if !ok {
		return fmt.Errorf("task type %s not found", taskType)
	}
	fmt.Fprintf(out, "%s (%s)\n", a.DisplayName, a.ID)
	fmt.Fprintf(out, "  %s\n\n", a.Description)
	fmt.Fprintf(out, "  taskType:   %s\n", a.TaskType)
	fmt.Fprintf(out, "  version:    %s\n", a.Version)
	fmt.Fprintf(out, "  status:     %s\n", a.ImplementationStatus)
	fmt.Fprintf(out, "  timeout:    %s\n", a.Timeout)
	fmt.Fprintf(out, "  retries:    %d\n", a.Retries)
	fmt.Fprintf(out, "  errorCodes: %s\n", strings.Join(a.ErrorCodes, ", "))
	fmt.Fprintf(out, "  inputs:     %s\n", strings.Join(schemaProperties(a.InputSchema), ", "))
	fmt.Fprintf(out, "  outputs:    %s\n", strings.Join(schemaProperties(a.OutputSchema), ", "))
	return nil
}

func schemaProperties(schema map[string]interface{}) []string {
	props, _ := schema["properties"].(map[string]interface{})
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func updateActivity(reg *registry.ActivityRegistry, id, field, value string) error {
	a, ok := reg.FindByID(id)
	if !ok {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	case "timeout":
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout value %q", value)
		}
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("invalid retries value %q", value)
		}
		a.Retries = retries
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	return nil
}

// validateRegistry goes beyond registry.Validate: every schema must compile,
// every timeout must parse and every error code must be one the workers raise.
func validateRegistry(reg *registry.ActivityRegistry) error {
	if len(reg.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}
	if err := reg.Validate(); err != nil {
		return err
	}
	if _, err := validation.NewSchemaValidator(reg); err != nil {
		return err
	}

	for _, a := range reg.Activities {
		if a.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: displayName", a.ID)
		}
		if a.Category == "" {
			return fmt.Errorf("activity %s missing required field: category", a.ID)
		}
		if a.Timeout != "" {
			if d, err := time.ParseDuration(a.Timeout); err != nil || d <= 0 {
				return fmt.Errorf("activity %s: invalid timeout %q", a.ID, a.Timeout)
			}
		}
		for _, code := range a.ErrorCodes {
			if _, known := errors.BPMNErrorMapping[errors.ErrorCode(code)]; !known {
				return fmt.Errorf("activity %s: unknown error code %s", a.ID, code)
			}
		}
	}
	return nil
}

func saveRegistry(reg *registry.ActivityRegistry, path string) error {
	data, err := reg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  list      List every activity
  show      Show one activity's contract
  update    Update an existing activity's field
  validate  Validate the registry file and compile its input schemas
  help      Show this help message

Examples:
  registry-updater list
  registry-updater show -taskType compute-ai-readiness
  registry-updater update -id readiness.composite.compute -field timeout -value 15s
  registry-updater validate -path pkg/registry/activity-registry.json

Use 'registry-updater <command> -h' for more information about a command.`)
}
