// @title           prompt-architect API
// @version         1.0
// @description     Turns a short seed idea into an embellished prompt for AI image generators.
// @BasePath        /api
package api
