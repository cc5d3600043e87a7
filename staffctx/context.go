package staffctx

import "context"

// Context key type
type contextKey string

const activeStaffKey contextKey = "active_staff"

// SetActiveStaff adds the selected staff identity to the request context
func SetActiveStaff(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, activeStaffKey, name)
}

// ActiveStaff retrieves the selected staff identity from the request
// context. Returns an empty string when no identity has been selected.
func ActiveStaff(ctx context.Context) string {
	name, ok := ctx.Value(activeStaffKey).(string)
	if !ok {
		return ""
	}
	return name
}
