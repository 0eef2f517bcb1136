package routegate_test

import (
	"fmt"
	"testing"

	"github.com/jrsteele09/dept-console/routegate"
	"github.com/stretchr/testify/require"
)

var gate = routegate.Gate{LoginPath: "/login", DefaultPath: "/dashboard"}

func TestGate_Protected(t *testing.T) {
	cases := []struct {
		loading       bool
		authenticated bool
		want          routegate.Decision
	}{
		{true, false, routegate.Decision{Action: routegate.Wait}},
		{true, true, routegate.Decision{Action: routegate.Wait}},
		{false, false, routegate.Decision{Action: routegate.Redirect, Location: "/login"}},
		{false, true, routegate.Decision{Action: routegate.Render}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("loading=%v authenticated=%v", tc.loading, tc.authenticated), func(t *testing.T) {
			got := gate.Protected(routegate.State{Loading: tc.loading, Authenticated: tc.authenticated})
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGate_CredentialEntry(t *testing.T) {
	cases := []struct {
		loading       bool
		authenticated bool
		want          routegate.Decision
	}{
		{true, false, routegate.Decision{Action: routegate.Render}},
		{true, true, routegate.Decision{Action: routegate.Redirect, Location: "/dashboard"}},
		{false, false, routegate.Decision{Action: routegate.Render}},
		{false, true, routegate.Decision{Action: routegate.Redirect, Location: "/dashboard"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("loading=%v authenticated=%v", tc.loading, tc.authenticated), func(t *testing.T) {
			got := gate.CredentialEntry(routegate.State{Loading: tc.loading, Authenticated: tc.authenticated})
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAction_String(t *testing.T) {
	require.Equal(t, "render", routegate.Render.String())
	require.Equal(t, "wait", routegate.Wait.String())
	require.Equal(t, "redirect", routegate.Redirect.String())
	require.Equal(t, "unknown", routegate.Action(42).String())
}
