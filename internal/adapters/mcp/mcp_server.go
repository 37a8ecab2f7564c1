// Package mcp provides the MCP (Model Context Protocol) server implementation.
// It exposes the in-memory task store and the statistics engine as tools, so
// an AI assistant can manage the task list for the lifetime of the session.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/SamirAliWebDev/Todo/internal/domain"
	"github.com/SamirAliWebDev/Todo/internal/ports"
	"github.com/SamirAliWebDev/Todo/internal/stats"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server *server.MCPServer
	store  ports.TaskStore
	now    func() time.Time
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new MCP server bound to the given task store.
// The clock is injectable for tests; nil means time.Now.
func NewServer(store ports.TaskStore, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}

	s := &Server{
		store: store,
		now:   now,
	}

	s.server = server.NewMCPServer(
		"todo",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	listTasksTool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List all tasks, newest first, optionally filtered by state"),
		mcp.WithString(
			"state",
			mcp.Description("Filter tasks by state: active or completed"),
			mcp.Enum("active", "completed"),
		),
	)
	s.server.AddTool(listTasksTool, s.handleListTasks)

	createTaskTool := mcp.NewTool(
		"create_task",
		mcp.WithDescription("Create a new task"),
		mcp.WithString(
			"text",
			mcp.Required(),
			mcp.Description("The text of the task"),
		),
		mcp.WithString(
			"category",
			mcp.Description("Optional category"),
			mcp.Enum("Work", "Personal", "Fitness"),
		),
		mcp.WithString(
			"time",
			mcp.Description("Optional display time, e.g. \"08:30 AM\""),
		),
		mcp.WithString(
			"date",
			mcp.Description("Optional scheduled date (YYYY-MM-DD); defaults to today"),
		),
	)
	s.server.AddTool(createTaskTool, s.handleCreateTask)

	toggleTaskTool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Flip the completion state of a task"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to toggle"),
		),
	)
	s.server.AddTool(toggleTaskTool, s.handleToggleTask)

	deleteTaskTool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Permanently delete a task"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to delete"),
		),
	)
	s.server.AddTool(deleteTaskTool, s.handleDeleteTask)

	s.server.AddTool(
		mcp.NewTool(
			"daily_progress",
			mcp.WithDescription("Get the day's completion summary: completed, total, percentage and headline"),
		),
		s.handleDailyProgress,
	)

	s.server.AddTool(
		mcp.NewTool(
			"weekly_activity",
			mcp.WithDescription("Get the Monday-Sunday activity calendar for the current week"),
		),
		s.handleWeeklyActivity,
	)

	s.server.AddTool(
		mcp.NewTool(
			"category_breakdown",
			mcp.WithDescription("Get per-category completion progress"),
		),
		s.handleCategoryBreakdown,
	)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// taskJSON shapes a task for tool results.
func taskJSON(t domain.Task) map[string]interface{} {
	data := map[string]interface{}{
		"id":        t.ID,
		"text":      t.Text,
		"completed": t.Completed,
	}
	if t.Category != domain.CategoryNone {
		data["category"] = string(t.Category)
	}
	if t.Time != "" {
		data["time"] = t.Time
	}
	if !t.Date.IsZero() {
		data["date"] = t.Date.String()
	}
	if !t.CompletionDate.IsZero() {
		data["completion_date"] = t.CompletionDate.String()
	}
	return data
}

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListTasks handles the list_tasks tool.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := request.GetString("state", "")

	var taskList []map[string]interface{}
	for _, t := range s.store.Snapshot() {
		if state == "active" && t.Completed {
			continue
		}
		if state == "completed" && !t.Completed {
			continue
		}
		taskList = append(taskList, taskJSON(t))
	}

	result := map[string]interface{}{
		"tasks": taskList,
		"count": len(taskList),
	}
	if state != "" {
		result["filter_state"] = state
	}

	return textResult(result)
}

// handleCreateTask handles the create_task tool.
func (s *Server) handleCreateTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required: " + err.Error()), nil
	}

	if _, err := domain.NewTask(text); err != nil {
		return mcp.NewToolResultError("text must not be blank"), nil
	}

	details := domain.TaskDetails{
		Text:     text,
		Category: domain.ParseCategory(request.GetString("category", "")),
		Time:     request.GetString("time", ""),
	}
	if rawDate := request.GetString("date", ""); rawDate != "" {
		date := domain.ParseDate(rawDate)
		if date.IsZero() {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", rawDate)), nil
		}
		details.Date = date
	}

	snapshot := s.store.Create(details)
	if len(snapshot) == 0 {
		return mcp.NewToolResultError("task was not created"), nil
	}

	// Creation prepends, so the new task is first.
	return textResult(taskJSON(snapshot[0]))
}

// handleToggleTask handles the toggle_task tool.
func (s *Server) handleToggleTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}

	if _, err := s.store.Get(taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", taskID)), nil
		}
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}

	s.store.Toggle(taskID)

	task, err := s.store.Get(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}

	return textResult(taskJSON(task))
}

// handleDeleteTask handles the delete_task tool.
func (s *Server) handleDeleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}

	task, err := s.store.Get(taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", taskID)), nil
		}
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}

	s.store.Delete(taskID)

	result := map[string]interface{}{
		"deleted": true,
		"task_id": taskID,
		"text":    task.Text,
	}

	return textResult(result)
}

// handleDailyProgress handles the daily_progress tool.
func (s *Server) handleDailyProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	progress := stats.DailyProgress(s.store.Snapshot())

	result := map[string]interface{}{
		"completed":  progress.Completed,
		"total":      progress.Total,
		"percentage": progress.Percentage,
		"headline":   stats.ProgressTitle(progress),
	}

	return textResult(result)
}

// handleWeeklyActivity handles the weekly_activity tool.
func (s *Server) handleWeeklyActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week := stats.WeeklyActivity(s.store.Snapshot(), s.now())

	var days []map[string]interface{}
	for _, day := range week {
		days = append(days, map[string]interface{}{
			"date":       day.Date.String(),
			"day_number": day.DayNumber,
			"is_today":   day.IsToday,
			"active":     day.Active,
		})
	}

	result := map[string]interface{}{
		"week_start": week[0].Date.String(),
		"days":       days,
	}

	return textResult(result)
}

// handleCategoryBreakdown handles the category_breakdown tool.
func (s *Server) handleCategoryBreakdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	breakdown := stats.CategoryBreakdown(s.store.Snapshot())

	var categories []map[string]interface{}
	for _, c := range breakdown {
		categories = append(categories, map[string]interface{}{
			"category":   string(c.Category),
			"completed":  c.Completed,
			"total":      c.Total,
			"percentage": c.Percentage,
		})
	}

	result := map[string]interface{}{
		"categories": categories,
	}

	return textResult(result)
}
