// cmd/tools/worker-generator/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"ai-readiness-workers/pkg/registry"
)

// WorkerData holds data for templates
type WorkerData struct {
	Name         string
	PackageName  string
	TaskType     string
	Directory    string
	Description  string
	InputFields  string
	OutputFields string
	Imports      []string
	ErrorCodes   []string
	Timeout      string
}

// goTypeFromJSONType maps JSON schema types to Go types
func goTypeFromJSONType(prop map[string]interface{}) string {
	if ref, ok := prop["$ref"].(string); ok {
		switch strings.TrimPrefix(ref, "#/definitions/") {
		case "profile":
			return "scoring.IndividualProfile"
		case "skills":
			return "[]scoring.IndividualSkill"
		case "parameters":
			return "*scoring.ParameterOverrides"
		}
		return "json.RawMessage"
	}

	switch prop["type"] {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	case "array":
		if items, ok := prop["items"].(map[string]interface{}); ok {
			return "[]" + goTypeFromJSONType(items)
		}
		return "[]interface{}"
	default:
		return "interface{}"
	}
}

// generateStructFields renders schema properties as Go fields in name order.
func generateStructFields(schema map[string]interface{}) string {
	props, _ := schema["properties"].(map[string]interface{})
	required := map[string]bool{}
	if req, ok := schema["required"].([]interface{}); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				required[s] = true
			}
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []string
	for _, name := range names {
		prop, ok := props[name].(map[string]interface{})
		if !ok {
			continue
		}
		tag := name
		if !required[name] {
			tag += ",omitempty"
		}
		field := fmt.Sprintf("\t%s %s `json:\"%s\"`", upperFirst(name), goTypeFromJSONType(prop), tag)
		if desc, ok := prop["description"].(string); ok && desc != "" {
			field += " // " + desc
		}
		fields = append(fields, field)
	}
	return strings.Join(fields, "\n")
}

// upperFirst makes the first character uppercase
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func packageName(taskType string) string {
	return strings.ReplaceAll(taskType, "-", "")
}

// durationLiteral renders d as Go source, e.g. "15 * time.Second".
func durationLiteral(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%d * time.Second", d/time.Second)
	}
	return fmt.Sprintf("%d * time.Millisecond", d/time.Millisecond)
}

func newWorkerData(a *registry.Activity) WorkerData {
	data := WorkerData{
		Name:         a.DisplayName,
		PackageName:  packageName(a.TaskType),
		TaskType:     a.TaskType,
		Directory:    filepath.Join(a.Category, a.TaskType),
		Description:  a.Description,
		InputFields:  generateStructFields(a.InputSchema),
		OutputFields: generateStructFields(a.OutputSchema),
		ErrorCodes:   a.ErrorCodes,
		Timeout:      durationLiteral(a.TimeoutDuration(defaultTimeout)),
	}
	fields := data.InputFields + data.OutputFields
	if strings.Contains(fields, "json.RawMessage") {
		data.Imports = append(data.Imports, "encoding/json")
	}
	if strings.Contains(fields, "scoring.") {
		data.Imports = append(data.Imports, "ai-readiness-workers/internal/scoring")
	}
	return data
}

const configTemplate = `// internal/workers/{{ .Directory }}/config.go
package {{ .PackageName }}

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: {{ .Timeout }},
	}
}
`

const modelsTemplate = `// internal/workers/{{ .Directory }}/models.go
package {{ .PackageName }}
{{ if .Imports }}
import (
{{- range .Imports }}
	"{{ . }}"
{{- end }}
)
{{ end }}
type Input struct {
{{ .InputFields }}
}

type Output struct {
{{ .OutputFields }}
}
`

const handlerTemplate = `// internal/workers/{{ .Directory }}/handler.go
package {{ .PackageName }}

import (
	"context"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/common/validation"
)

const TaskType = "{{ .TaskType }}"

// Handler: {{ .Description }}
type Handler struct {
	config       *Config
	validator    *validation.SchemaValidator
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, validator *validation.SchemaValidator, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		validator:    validator,
		errorHandler: errors.NewErrorHandler(l),
		logger:       l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := h.validator.DecodeJobVariables(TaskType, job.Variables, &input); err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	if err := h.completeJob(ctx, client, job, output); err != nil {
		h.fail(ctx, client, job, errors.NewInternalError(err))
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

// execute may fail with:{{ range .ErrorCodes }} {{ . }}{{ end }}
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	return &Output{}, nil
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	bpmnErr := h.errorHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("encode job variables: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("send complete job command: %w", err)
	}
	return nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
`

const testTemplate = `// internal/workers/{{ .Directory }}/handler_test.go
package {{ .PackageName }}

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/validation"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	t.Helper()
	v, err := validation.NewDefaultValidator()
	require.NoError(t, err)
	return NewHandler(LoadConfig(), v, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	require.NotNil(t, output)
}
`

const defaultTimeout = 10 * time.Second

var templates = map[string]string{
	"config.go":       configTemplate,
	"models.go":       modelsTemplate,
	"handler.go":      handlerTemplate,
	"handler_test.go": testTemplate,
}

// generate writes the scaffold under outputDir and returns the files written.
// Existing files are never overwritten.
func generate(data WorkerData, outputDir string) ([]string, error) {
	workerDir := filepath.Join(outputDir, data.Directory)
	if err := os.MkdirAll(workerDir, 0755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		path := filepath.Join(workerDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}

		tmpl, err := template.New(name).Parse(templates[name])
		if err != nil {
			return written, fmt.Errorf("parse template %s: %w", name, err)
		}
		file, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("create %s: %w", path, err)
		}
		err = tmpl.Execute(file, data)
		file.Close()
		if err != nil {
			return written, fmt.Errorf("render %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func main() {
	taskType := flag.String("taskType", "", "Task type from the registry (e.g., compute-ai-readiness)")
	outputDir := flag.String("output", "./internal/workers/", "Output directory for the generated worker")
	registryPath := flag.String("registry", "pkg/registry/activity-registry.json", "Path to the activity registry JSON file")
	flag.Parse()

	if *taskType == "" {
		fmt.Println("Usage: worker-generator -taskType <type> [-output <dir>] [-registry <path>]")
		os.Exit(1)
	}

	reg, err := registry.LoadRegistry(*registryPath)
	if err != nil {
		fmt.Printf("Error loading registry from %s: %v\n", *registryPath, err)
		os.Exit(1)
	}
	activity, ok := reg.FindByTaskType(*taskType)
	if !ok {
		fmt.Printf("Task type '%s' not found in registry %s\n", *taskType, *registryPath)
		os.Exit(1)
	}

	written, err := generate(newWorkerData(activity), *outputDir)
	for _, path := range written {
		fmt.Printf("Generated %s\n", path)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if len(written) == 0 {
		fmt.Println("Nothing to generate, every file already exists.")
		return
	}

	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. Implement execute in handler.go\n")
	fmt.Printf("  2. Register the worker in cmd/worker-manager/workers.go\n")
	fmt.Printf("  3. Add a workers.%s entry to configs/config.yaml\n", *taskType)
}
