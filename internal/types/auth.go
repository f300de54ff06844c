package types

type AuthProvider string

const (
	AuthProviderSupabase AuthProvider = "supabase"
	AuthProviderLocal    AuthProvider = "local"
)
