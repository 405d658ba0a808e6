// Package http provides request and response helpers for JSON handlers
// served by the demo application.
//
// Response wraps http.ResponseWriter:
//
//	res := gohttp.NewResponse(w)
//
//	// JSON
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...}
//	res.Created(data)             // 201 {"data": ...}
//	res.NoContent()               // 204
//
//	// Errors
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.ServerError()             // 500 {"message": "Server Error."}
//
// Request wraps *http.Request:
//
//	req := gohttp.NewRequest(r)
//
//	var in CreateUser
//	req.Bind(&in)                 // decode JSON body
//	req.Query("page", "1")        // query value with fallback
//	req.Param("id")               // chi route parameter
//	req.BearerToken()             // Authorization: Bearer <token>
package http
