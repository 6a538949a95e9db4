// Package validate provides before-change hooks that reject invalid values.
//
// Each constructor returns a hook to be defined on a schema builder and bound
// with BeforeChange. A rejected value makes the setter return a
// *errors.ValidationError before anything is written:
//
//	accessorhooks.Define[*User]().
//	    Hook("checkEmail", validate.Format[*User]("email")).
//	    BeforeChange("checkEmail", "email")
//
// String formats are the ones known to the go-openapi/strfmt default registry
// (email, uuid, date-time, hostname, ipv4, uri, ...).
package validate
