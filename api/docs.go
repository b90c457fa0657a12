// Package api registers the OpenAPI document served at /docs.
//
// The paths are generated from the handler annotations with
// swag init -g main.go -o api --outputTypes go.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.V1Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Permanently deletes all resources of the current user",
                "tags": [
                    "v1"
                ],
                "summary": "Delete everything",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'",
                        "name": "confirm",
                        "in": "query"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/alerts/upcoming-due-dates": {
            "get": {
                "description": "Returns the fixed expenses whose due date in the given month is between today and three days from today",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Dashboard"
                ],
                "summary": "Get upcoming due dates",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Month, 1 to 12. Defaults to the current month",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Year. Defaults to the current year",
                        "name": "year",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-alerts_Alert"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-alerts_Alert"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Dashboard"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns all categories",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_Category"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new categories",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Create categories",
                "parameters": [
                    {
                        "description": "Categories",
                        "name": "categories",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.CategoryEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Category"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Category"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories/{id}": {
            "get": {
                "description": "Returns a specific category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Category"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Category"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a category",
                "tags": [
                    "Categories"
                ],
                "summary": "Delete category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing category. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Update category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Category"
                        }
                    },
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Category"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Category"
                        }
                    }
                }
            }
        },
        "/v1/contributions/{id}": {
            "delete": {
                "description": "Deletes a contribution and removes its amount from the goal",
                "tags": [
                    "Goals"
                ],
                "summary": "Delete contribution",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/dashboard": {
            "get": {
                "description": "Returns the totals, balances and expenses per category for a month. If the database is unavailable, the summary is computed without the missing data.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Dashboard"
                ],
                "summary": "Get dashboard",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Month, 1 to 12. Defaults to the current month",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Year. Defaults to the current year",
                        "name": "year",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-dashboard_Summary"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-dashboard_Summary"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Dashboard"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/emergency-reserve": {
            "get": {
                "description": "Returns all movements of the emergency reserve, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Get movements",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_ReserveTransaction"
                        }
                    }
                }
            },
            "post": {
                "description": "Adds deposits (positive amounts) or withdrawals (negative amounts) to the emergency reserve",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Add movements",
                "parameters": [
                    {
                        "description": "Movements",
                        "name": "movements",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.ReserveTransactionEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_ReserveTransaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_ReserveTransaction"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_ReserveTransaction"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/emergency-reserve/balance": {
            "get": {
                "description": "Returns the sum of all movements of the emergency reserve",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Get balance",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_ReserveBalance"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/emergency-reserve/{id}": {
            "get": {
                "description": "Returns a specific movement of the emergency reserve",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Get movement",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_ReserveTransaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_ReserveTransaction"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_ReserveTransaction"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a movement of the emergency reserve",
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Delete movement",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Emergency Reserve"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/export": {
            "get": {
                "description": "Exports all data. XLSX files contain one sheet per resource, CSV files one section per resource.",
                "produces": [
                    "application/json",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
                    "text/csv"
                ],
                "tags": [
                    "Export"
                ],
                "summary": "Export",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "json",
                            "xlsx",
                            "csv"
                        ],
                        "description": "File format",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Export"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/fixed-expenses": {
            "get": {
                "description": "Returns all fixed expenses, ordered by due day",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fixed Expenses"
                ],
                "summary": "Get fixed expenses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_FixedExpense"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new fixed expenses. Expenses are active unless specified otherwise.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fixed Expenses"
                ],
                "summary": "Create fixed expenses",
                "parameters": [
                    {
                        "description": "Fixed expenses",
                        "name": "fixedExpenses",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.FixedExpenseEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_FixedExpense"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_FixedExpense"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_FixedExpense"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Fixed Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/fixed-expenses/{id}": {
            "get": {
                "description": "Returns a specific fixed expense",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fixed Expenses"
                ],
                "summary": "Get fixed expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_FixedExpense"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_FixedExpense"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_FixedExpense"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a fixed expense",
                "tags": [
                    "Fixed Expenses"
                ],
                "summary": "Delete fixed expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Fixed Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing fixed expense. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fixed Expenses"
                ],
                "summary": "Update fixed expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fixed expense",
                        "name": "fixedExpense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.FixedExpenseEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_FixedExpense"
                        }
                    },
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_FixedExpense"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_FixedExpense"
                        }
                    }
                }
            }
        },
        "/v1/goals": {
            "get": {
                "description": "Returns all goals",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Get goals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_Goal"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new goals. Goals start without contributions.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Create goals",
                "parameters": [
                    {
                        "description": "Goals",
                        "name": "goals",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.GoalEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Goal"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Goal"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Goal"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/goals/{id}": {
            "get": {
                "description": "Returns a specific goal",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Get goal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Goal"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Goal"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Goal"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a goal and all its contributions",
                "tags": [
                    "Goals"
                ],
                "summary": "Delete goal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing goal. Only values to be updated need to be specified. The current amount can only be changed with contributions.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Update goal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Goal",
                        "name": "goal",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.GoalEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Goal"
                        }
                    },
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Goal"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Goal"
                        }
                    }
                }
            }
        },
        "/v1/goals/{id}/contributions": {
            "get": {
                "description": "Returns the contributions to a goal, newest first. For a goal that does not exist, the list is empty.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Get contributions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_Contribution"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_Contribution"
                        }
                    }
                }
            },
            "post": {
                "description": "Adds contributions to a goal and updates its progress",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Goals"
                ],
                "summary": "Add contributions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Contributions",
                        "name": "contributions",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.ContributionEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Contribution"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Contribution"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Contribution"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Contribution"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/incomes": {
            "get": {
                "description": "Returns the incomes, newest first. When both startDate and endDate are set and startDate is not after endDate, only incomes in that range are returned.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Get incomes",
                "parameters": [
                    {
                        "type": "string",
                        "description": "First date of the range",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last date of the range",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_Income"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_Income"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new incomes",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Create incomes",
                "parameters": [
                    {
                        "description": "Incomes",
                        "name": "incomes",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.IncomeEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Income"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Income"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_Income"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Incomes"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/incomes/{id}": {
            "get": {
                "description": "Returns a specific income",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Get income",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Income"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Income"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Income"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes an income",
                "tags": [
                    "Incomes"
                ],
                "summary": "Delete income",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Incomes"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing income. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Incomes"
                ],
                "summary": "Update income",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Income"
                        }
                    },
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Income"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_Income"
                        }
                    }
                }
            }
        },
        "/v1/me": {
            "get": {
                "description": "Returns the user that owns all resources of the request",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "v1"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_User"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_User"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_User"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/payment-types": {
            "get": {
                "description": "Returns all payment types",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Payment Types"
                ],
                "summary": "Get payment types",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_PaymentType"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new payment types",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Payment Types"
                ],
                "summary": "Create payment types",
                "parameters": [
                    {
                        "description": "Payment types",
                        "name": "paymentTypes",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.PaymentTypeEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_PaymentType"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_PaymentType"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_PaymentType"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Payment Types"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/payment-types/{id}": {
            "get": {
                "description": "Returns a specific payment type",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Payment Types"
                ],
                "summary": "Get payment type",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_PaymentType"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_PaymentType"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_PaymentType"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a payment type",
                "tags": [
                    "Payment Types"
                ],
                "summary": "Delete payment type",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Payment Types"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing payment type. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Payment Types"
                ],
                "summary": "Update payment type",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payment type",
                        "name": "paymentType",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.PaymentTypeEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_PaymentType"
                        }
                    },
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_PaymentType"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_PaymentType"
                        }
                    }
                }
            }
        },
        "/v1/variable-expenses": {
            "get": {
                "description": "Returns the variable expenses, newest first. When both startDate and endDate are set and startDate is not after endDate, only expenses in that range are returned.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Variable Expenses"
                ],
                "summary": "Get variable expenses",
                "parameters": [
                    {
                        "type": "string",
                        "description": "First date of the range",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last date of the range",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_VariableExpense"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ListResponse-v1_VariableExpense"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new variable expenses",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Variable Expenses"
                ],
                "summary": "Create variable expenses",
                "parameters": [
                    {
                        "description": "Variable expenses",
                        "name": "variableExpenses",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.VariableExpenseEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_VariableExpense"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_VariableExpense"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.CreateResponse-v1_VariableExpense"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Variable Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/variable-expenses/{id}": {
            "get": {
                "description": "Returns a specific variable expense",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Variable Expenses"
                ],
                "summary": "Get variable expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_VariableExpense"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_VariableExpense"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_VariableExpense"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a variable expense",
                "tags": [
                    "Variable Expenses"
                ],
                "summary": "Delete variable expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Variable Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing variable expense. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Variable Expenses"
                ],
                "summary": "Update variable expense",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Variable expense",
                        "name": "variableExpense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.VariableExpenseEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_VariableExpense"
                        }
                    },
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_VariableExpense"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-v1_VariableExpense"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "alerts.Alert": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "dueDate": {
                    "type": "string",
                    "example": "2024-03-10T00:00:00-03:00"
                },
                "dueDay": {
                    "type": "integer"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isActive": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "dashboard.CategoryAmount": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer",
                    "example": 150000
                },
                "categoryIcon": {
                    "type": "string",
                    "example": "🏠"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "0a4b2d1b-5dc4-4e62-8d3c-9a3b0fbb1e36"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Moradia"
                },
                "percentage": {
                    "description": "Share of total expenses, rounded to 4 decimal places",
                    "type": "string",
                    "example": "62.5"
                }
            }
        },
        "dashboard.Summary": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "integer",
                    "example": 175950
                },
                "balanceWithReserve": {
                    "type": "integer",
                    "example": 1175950
                },
                "categoryBreakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dashboard.CategoryAmount"
                    }
                },
                "month": {
                    "type": "string",
                    "example": "2024-03"
                },
                "reserveBalance": {
                    "type": "integer",
                    "example": 1000000
                },
                "totalExpenses": {
                    "type": "integer",
                    "example": 324050
                },
                "totalFixedExpenses": {
                    "type": "integer",
                    "example": 240000
                },
                "totalIncomes": {
                    "type": "integer",
                    "example": 500000
                },
                "totalVariableExpenses": {
                    "type": "integer",
                    "example": 84050
                }
            }
        },
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "name: must not be empty"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "lastSignedIn": {
                    "type": "string"
                },
                "loginMethod": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "openId": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "description": "Swagger API documentation",
                    "type": "string",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "description": "Health of the backend",
                    "type": "string",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "description": "Endpoint returning Prometheus metrics",
                    "type": "string",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "description": "List endpoint for all v1 endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "description": "Endpoint returning the version of the backend",
                    "type": "string",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "alerts": {
                    "description": "URL of the due date alerts",
                    "type": "string",
                    "example": "https://example.com/api/v1/alerts/upcoming-due-dates"
                },
                "categories": {
                    "description": "URL of category list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/categories"
                },
                "dashboard": {
                    "description": "URL of the monthly dashboard",
                    "type": "string",
                    "example": "https://example.com/api/v1/dashboard"
                },
                "emergencyReserve": {
                    "description": "URL of emergency reserve list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/emergency-reserve"
                },
                "export": {
                    "description": "URL of the data export",
                    "type": "string",
                    "example": "https://example.com/api/v1/export"
                },
                "fixedExpenses": {
                    "description": "URL of fixed expense list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/fixed-expenses"
                },
                "goals": {
                    "description": "URL of goal list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/goals"
                },
                "incomes": {
                    "description": "URL of income list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/incomes"
                },
                "me": {
                    "description": "URL of the current user",
                    "type": "string",
                    "example": "https://example.com/api/v1/me"
                },
                "paymentTypes": {
                    "description": "URL of payment type list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/payment-types"
                },
                "variableExpenses": {
                    "description": "URL of variable expense list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/variable-expenses"
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.V1Links"
                        }
                    ]
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "description": "the running version of the backend",
                    "type": "string",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "v1.Category": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "icon": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.Links"
                },
                "name": {
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.CategoryEditable": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "icon": {
                    "description": "Glyph displayed for the category",
                    "type": "string",
                    "example": "🏠",
                    "maxLength": 10
                },
                "name": {
                    "description": "Name of the category",
                    "type": "string",
                    "example": "Moradia",
                    "maxLength": 100
                }
            }
        },
        "v1.Contribution": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "goalId": {
                    "type": "string",
                    "format": "uuid"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.ContributionLinks"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.ContributionEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "Amount in cents",
                    "type": "integer",
                    "example": 50000
                },
                "date": {
                    "description": "Date of the contribution, defaults to now",
                    "type": "string",
                    "example": "2024-03-05T12:00:00Z"
                },
                "description": {
                    "description": "Description of the contribution",
                    "type": "string",
                    "example": "Décimo terceiro",
                    "maxLength": 500
                }
            }
        },
        "v1.ContributionLinks": {
            "type": "object",
            "properties": {
                "goal": {
                    "description": "The goal the contribution belongs to",
                    "type": "string",
                    "example": "https://example.com/api/v1/goals/0c1b5a3e-7a5f-4b53-9d3c-1b2a4f6e8d90"
                },
                "self": {
                    "description": "The contribution itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/contributions/7d0f3f0e-2b9c-4d1e-8e0a-3c5b6a7d8e9f"
                }
            }
        },
        "v1.CreateResponse-v1_Category": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_Category"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CreateResponse-v1_Contribution": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_Contribution"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CreateResponse-v1_FixedExpense": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_FixedExpense"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CreateResponse-v1_Goal": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_Goal"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CreateResponse-v1_Income": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_Income"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CreateResponse-v1_PaymentType": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_PaymentType"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CreateResponse-v1_ReserveTransaction": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_ReserveTransaction"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CreateResponse-v1_VariableExpense": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of the created resources or their respective error",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Response-v1_VariableExpense"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.FixedExpense": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "dueDay": {
                    "type": "integer"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isActive": {
                    "type": "boolean"
                },
                "links": {
                    "$ref": "#/definitions/v1.Links"
                },
                "name": {
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.FixedExpenseEditable": {
            "type": "object",
            "required": [
                "categoryId",
                "name"
            ],
            "properties": {
                "amount": {
                    "description": "Amount in cents",
                    "type": "integer",
                    "example": 150000,
                    "minimum": 0
                },
                "categoryId": {
                    "description": "ID of the category",
                    "type": "string",
                    "format": "uuid",
                    "example": "5e2b0a4c-8f57-4a43-9a1f-38a8e7d1b0c1"
                },
                "dueDay": {
                    "description": "Day of the month the expense is due",
                    "type": "integer",
                    "example": 10,
                    "minimum": 1,
                    "maximum": 31
                },
                "isActive": {
                    "description": "Inactive expenses are not part of the dashboard",
                    "type": "boolean",
                    "default": true,
                    "example": true
                },
                "name": {
                    "description": "Name of the expense",
                    "type": "string",
                    "example": "Aluguel",
                    "maxLength": 200
                }
            }
        },
        "v1.Goal": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "currentAmount": {
                    "type": "integer"
                },
                "deadline": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isCompleted": {
                    "type": "boolean"
                },
                "links": {
                    "$ref": "#/definitions/v1.GoalLinks"
                },
                "name": {
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "targetAmount": {
                    "type": "integer"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.GoalEditable": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "deadline": {
                    "description": "Date the goal should be reached",
                    "type": "string",
                    "example": "2024-07-01T00:00:00Z"
                },
                "description": {
                    "description": "Description of the goal",
                    "type": "string",
                    "example": "Férias em julho",
                    "maxLength": 1000
                },
                "icon": {
                    "description": "Glyph displayed for the goal, defaults to 🎯",
                    "type": "string",
                    "example": "✈️",
                    "maxLength": 10
                },
                "name": {
                    "description": "Name of the goal",
                    "type": "string",
                    "example": "Viagem",
                    "maxLength": 200
                },
                "targetAmount": {
                    "description": "Amount to save in cents",
                    "type": "integer",
                    "example": 500000
                }
            }
        },
        "v1.GoalLinks": {
            "type": "object",
            "properties": {
                "contributions": {
                    "description": "Contributions to the goal",
                    "type": "string",
                    "example": "https://example.com/api/v1/goals/0c1b5a3e-7a5f-4b53-9d3c-1b2a4f6e8d90/contributions"
                },
                "self": {
                    "description": "The goal itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/goals/0c1b5a3e-7a5f-4b53-9d3c-1b2a4f6e8d90"
                }
            }
        },
        "v1.Income": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isRecurring": {
                    "type": "boolean"
                },
                "links": {
                    "$ref": "#/definitions/v1.Links"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.IncomeEditable": {
            "type": "object",
            "required": [
                "date",
                "name"
            ],
            "properties": {
                "amount": {
                    "description": "Amount in cents",
                    "type": "integer",
                    "example": 850000,
                    "minimum": 0
                },
                "date": {
                    "description": "Date the income was received",
                    "type": "string",
                    "example": "2024-03-05T12:00:00Z"
                },
                "isRecurring": {
                    "description": "Is this income received every month?",
                    "type": "boolean",
                    "default": false,
                    "example": true
                },
                "name": {
                    "description": "Name of the income",
                    "type": "string",
                    "example": "Salário",
                    "maxLength": 200
                },
                "notes": {
                    "description": "Notes about the income",
                    "type": "string",
                    "example": "",
                    "maxLength": 1000
                }
            }
        },
        "v1.Links": {
            "type": "object",
            "properties": {
                "self": {
                    "description": "The resource itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"
                }
            }
        },
        "v1.ListResponse-alerts_Alert": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/alerts.Alert"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_Category": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Category"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_Contribution": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Contribution"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_FixedExpense": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.FixedExpense"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_Goal": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Goal"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_Income": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Income"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_PaymentType": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.PaymentType"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_ReserveTransaction": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ReserveTransaction"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ListResponse-v1_VariableExpense": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of resources",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.VariableExpense"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.PaymentType": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.Links"
                },
                "name": {
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.PaymentTypeEditable": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "description": "Name of the payment type",
                    "type": "string",
                    "example": "Cartão de crédito",
                    "maxLength": 50
                }
            }
        },
        "v1.ReserveBalance": {
            "type": "object",
            "properties": {
                "balance": {
                    "description": "Balance in cents",
                    "type": "integer",
                    "example": 1500000
                }
            }
        },
        "v1.ReserveTransaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.Links"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.ReserveTransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "Amount in cents. Deposits are positive, withdrawals negative",
                    "type": "integer",
                    "example": -20000
                },
                "date": {
                    "description": "Date of the movement, defaults to now",
                    "type": "string",
                    "example": "2024-03-05T12:00:00Z"
                },
                "description": {
                    "description": "Description of the movement",
                    "type": "string",
                    "example": "Conserto do carro",
                    "maxLength": 500
                }
            }
        },
        "v1.Response-dashboard_Summary": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-models_User": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.User"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_Category": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Category"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_Contribution": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Contribution"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_FixedExpense": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.FixedExpense"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_Goal": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Goal"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_Income": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Income"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_PaymentType": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.PaymentType"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_ReserveBalance": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.ReserveBalance"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_ReserveTransaction": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.ReserveTransaction"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response-v1_VariableExpense": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the resource",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.VariableExpense"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.VariableExpense": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "currentInstallment": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "installments": {
                    "type": "integer"
                },
                "isPaid": {
                    "type": "boolean"
                },
                "links": {
                    "$ref": "#/definitions/v1.Links"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the user owning the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "4e743e94-6a4b-44d6-aba5-d77c87103ff7"
                },
                "paymentTypeId": {
                    "type": "string",
                    "format": "uuid"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.VariableExpenseEditable": {
            "type": "object",
            "required": [
                "categoryId",
                "date",
                "name"
            ],
            "properties": {
                "amount": {
                    "description": "Amount in cents",
                    "type": "integer",
                    "example": 25990,
                    "minimum": 0
                },
                "categoryId": {
                    "description": "ID of the category",
                    "type": "string",
                    "format": "uuid",
                    "example": "5e2b0a4c-8f57-4a43-9a1f-38a8e7d1b0c1"
                },
                "currentInstallment": {
                    "description": "The installment this expense is",
                    "type": "integer",
                    "default": 1,
                    "example": 3,
                    "minimum": 1
                },
                "date": {
                    "description": "Date of the expense",
                    "type": "string",
                    "example": "2024-03-15T12:00:00Z"
                },
                "installments": {
                    "description": "Number of installments of the purchase",
                    "type": "integer",
                    "default": 1,
                    "example": 10,
                    "minimum": 1
                },
                "isPaid": {
                    "description": "Has the expense been paid?",
                    "type": "boolean",
                    "default": false,
                    "example": false
                },
                "name": {
                    "description": "Name of the expense",
                    "type": "string",
                    "example": "Mercado",
                    "maxLength": 200
                },
                "notes": {
                    "description": "Notes about the expense",
                    "type": "string",
                    "example": "Compra do mês",
                    "maxLength": 1000
                },
                "paymentTypeId": {
                    "description": "ID of the payment type used",
                    "type": "string",
                    "format": "uuid",
                    "example": "0f1b1d55-2f0e-4d1a-9b1a-6c8b0c8e2a10"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "name: must not be empty"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
