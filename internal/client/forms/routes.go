package forms

// Routes the forms navigate between.
const (
	RouteSignIn         = "/"
	RouteSignUp         = "/signup"
	RouteForgotPassword = "/forgot-password"
	RouteResetPassword  = "/reset-password"
	RouteDashboard      = "/dashboard"
	RouteProfile        = "/profile"
)
