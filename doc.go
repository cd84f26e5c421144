// Package clientlib renders client library includes as HTML script and link
// tags with loading attributes the platform's own tag writer lacks.
//
// # Quick Start
//
// Describe the include with Bindings and hand the host services to New:
//
//	r := clientlib.New(clientlib.Bindings{
//	    Categories:  "site.base, site.nav",
//	    Mode:        "js",
//	    Loading:     "defer",
//	    CrossOrigin: "anonymous",
//	}, clientlib.Services{
//	    Libraries: manager,
//	    Encoder:   clientlib.HTMLAttrEncoder{},
//	    Resolver:  resolver,
//	    Logger:    logger,
//	})
//	fragment := r.Include()
//
// # Options
//
// Categories are given as a []string, a []any or a comma-separated string.
// Entries are trimmed and blank or non-string entries are dropped.
//
// Mode "js" renders scripts only, "css" renders styles only, anything else
// renders styles followed by scripts.
//
// Loading ("async", "defer") and CrossOrigin ("anonymous",
// "use-credentials") are matched case-insensitively and written lowercased.
// Other values are dropped. Onload is escaped with the Encoder before being
// written on script tags.
//
// # Output
//
// Each script library yields one tag:
//
//	<script type="text/javascript" src="/etc.clientlibs/site/base.js" defer></script>
//
// Each style library yields a preload tag and a print-media stylesheet that
// switches itself to all media once loaded:
//
//	<link rel="preload" href="/etc.clientlibs/site/base.css" as="style">
//	<link rel="stylesheet" href="/etc.clientlibs/site/base.css" media="print" type="text/css" onload="this.media='all'">
//
// Libraries that allow proxying and live under /libs/ or /apps/ are served
// from /etc.clientlibs/. Any other library is included only when the
// Resolver can see its path; invisible libraries are left out silently.
//
// # Errors
//
// Include never fails. A missing categories option is logged as
// ErrMissingCategories and yields an empty string.
//
// # Templates
//
// FuncMap exposes the renderer to html/template as clientlib, clientlibCSS
// and clientlibJS.
package clientlib
