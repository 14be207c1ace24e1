// Package pathmaker builds URL and file-system paths from a base path, path
// templates with named tokens, and query parameters.
//
//	site := pathmaker.New("http://www.site.test/app/")
//	login := site.Sub("login/")
//	login.Build(pathmaker.Payload{"query": pathmaker.Q("redirect", "/dashboard")})
//	// http://www.site.test/app/login/?redirect=%2Fdashboard
//
//	users := pathmaker.New("http://api.site.test/").Sub("users/:id")
//	users.Build(pathmaker.Payload{"id": 10})
//	// http://api.site.test/users/10
//
// A Builder never changes after construction and is safe for concurrent use.
package pathmaker
