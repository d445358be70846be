// Package docs содержит swagger-описание API шлюза.
// При изменении аннотаций обработчиков описание правится вручную.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Проверка живости", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{userID}/grids": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Grids"], "summary": "Альбомы пользователя", "parameters": [{"type": "integer", "description": "ID пользователя Telegram", "name": "userID", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/me/grids": {"post": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Grids"], "summary": "Создать альбом", "parameters": [{"description": "Название альбома", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/gridcreate.Request"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/me/grids/{gridID}": {"delete": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Grids"], "summary": "Удалить альбом", "parameters": [{"type": "integer", "description": "ID альбома", "name": "gridID", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/grids/{gridID}/rows": {"post": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Grids"], "summary": "Добавить строку", "parameters": [{"type": "integer", "description": "ID альбома", "name": "gridID", "in": "path", "required": true}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/grids/{gridID}/rows/{row}/cells/{cell}": {"put": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Grids"], "summary": "Записать подарок в ячейку", "parameters": [{"type": "integer", "name": "gridID", "in": "path", "required": true}, {"type": "integer", "name": "row", "in": "path", "required": true}, {"type": "integer", "name": "cell", "in": "path", "required": true}, {"description": "Подарок или null", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cellupdate.Request"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/grids/{gridID}/cells/swap": {"post": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Grids"], "summary": "Переставить ячейки", "parameters": [{"type": "integer", "name": "gridID", "in": "path", "required": true}, {"description": "Исходная и целевая ячейки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cellswap.Request"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Ячейка или альбом не найдены", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "409": {"description": "Ячейка закреплена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "502": {"description": "Бэкенд не принял перестановку, изменения откатены", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/grids/{gridID}/cells/{row}/{cell}/pin": {"post": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Grids"], "summary": "Закрепить ячейку", "parameters": [{"type": "integer", "name": "gridID", "in": "path", "required": true}, {"type": "integer", "name": "row", "in": "path", "required": true}, {"type": "integer", "name": "cell", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cellpin.Request"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{userID}/pinned": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Grids"], "summary": "Закреплённые подарки", "parameters": [{"type": "integer", "name": "userID", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/users/{userID}/views": {"post": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Profile"], "summary": "Учесть просмотр профиля", "description": "Засчитывает просмотр чужого профиля. Свой профиль и сбои бэкенда дают tracked=false.", "parameters": [{"type": "integer", "description": "ID пользователя Telegram", "name": "userID", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/users/{userID}": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Profile"], "summary": "Профиль пользователя", "parameters": [{"type": "integer", "name": "userID", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/me/bio": {"put": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Profile"], "summary": "Изменить описание профиля", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/bio.Request"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/me/share": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Profile"], "summary": "Ссылка на свой профиль", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/deeplink": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Profile"], "summary": "Разобрать параметр запуска", "parameters": [{"type": "string", "name": "start_param", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Параметр не ссылается на профиль", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/me/subscription": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Subscriptions"], "summary": "Моя подписка", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/subscriptions/plans": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Subscriptions"], "summary": "Тарифные планы", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/payments/stars/invoice": {"post": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Payments"], "summary": "Создать счёт Telegram Stars", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/payments/stars/invoice/closed": {"post": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Payments"], "summary": "Счёт закрыт", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/invoiceclosed.Request"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/constructor/options": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Constructor"], "summary": "Варианты атрибута", "parameters": [{"type": "string", "name": "field", "in": "query", "required": true}, {"type": "string", "name": "mode", "in": "query"}, {"type": "string", "name": "collection", "in": "query"}, {"type": "string", "name": "model", "in": "query"}, {"type": "string", "name": "backdrop", "in": "query"}, {"type": "boolean", "name": "image_proxy", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/constructor/select": {"post": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Constructor"], "summary": "Выбрать атрибут", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/selectattr.Request"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/constructor/resolve": {"post": {"security": [{"TelegramInitData": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Constructor"], "summary": "Собрать подарок", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/resolve.Request"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/api/v1/catalog/gifts": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Catalog"], "summary": "Коллекции подарков", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/catalog/backdrops": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Catalog"], "summary": "Фоны подарков", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/catalog/models/{name}": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Catalog"], "summary": "Модели коллекции", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/catalog/patterns/{name}": {"get": {"security": [{"TelegramInitData": []}], "produces": ["application/json"], "tags": ["Catalog"], "summary": "Символы коллекции", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/api/v1/catalog/prefetch": {"post": {"security": [{"TelegramInitData": []}], "tags": ["Catalog"], "summary": "Прогреть каталог", "responses": {"204": {"description": "No Content"}, "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/proxy/image/": {"get": {"produces": ["application/octet-stream"], "tags": ["Proxy"], "summary": "Проксирование изображения подарка", "description": "Загружает PNG или Lottie JSON с разрешённого CDN и отдаёт его клиенту. Авторизация не требуется, лимит считается по IP.", "parameters": [{"type": "string", "description": "Адрес исходного файла", "name": "url", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "url is required", "schema": {"type": "string"}}, "403": {"description": "host is not allowed", "schema": {"type": "string"}}, "429": {"description": "Too Many Requests", "schema": {"type": "string"}}, "502": {"description": "upstream failed", "schema": {"type": "string"}}}}}
    },
    "definitions": {
        "response.Response": {"type": "object", "properties": {"data": {}, "error": {"type": "string"}, "status": {"type": "string"}}},
        "response.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string", "example": "invalid request body"}, "status": {"type": "string", "example": "Error"}}},
        "models.CellPosition": {"type": "object", "properties": {"cell_index": {"type": "integer", "maximum": 2, "minimum": 0}, "row_index": {"type": "integer", "minimum": 0}}},
        "models.Gift": {"type": "object", "required": ["name"], "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "model": {"type": "string"}, "background": {"type": "object"}, "pattern": {"type": "string"}}},
        "models.GiftMedia": {"type": "object", "properties": {"image": {"type": "string"}, "animation_url": {"type": "string"}, "telegram_url": {"type": "string"}}},
        "constructor.Selection": {"type": "object", "properties": {"collection": {"type": "string"}, "model": {"type": "string"}, "backdrop": {"type": "string"}, "symbol": {"type": "string"}, "gift_number": {"type": "integer"}}},
        "gridcreate.Request": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "maxLength": 64}}},
        "cellupdate.Request": {"type": "object", "properties": {"gift": {"$ref": "#/definitions/models.Gift"}}},
        "cellswap.Request": {"type": "object", "properties": {"source": {"$ref": "#/definitions/models.CellPosition"}, "target": {"$ref": "#/definitions/models.CellPosition"}}},
        "cellpin.Request": {"type": "object", "properties": {"pinned": {"type": "boolean"}}},
        "bio.Request": {"type": "object", "properties": {"bio": {"type": "string", "maxLength": 140}}},
        "invoiceclosed.Request": {"type": "object", "required": ["status"], "properties": {"status": {"type": "string", "enum": ["paid", "cancelled", "failed", "pending"]}}},
        "selectattr.Request": {"type": "object", "required": ["field"], "properties": {"selection": {"$ref": "#/definitions/constructor.Selection"}, "field": {"type": "string", "enum": ["gifts", "model", "background", "pattern"]}, "value": {"type": "string"}, "gift_number": {"type": "integer"}}},
        "resolve.Request": {"type": "object", "properties": {"mode": {"type": "string", "enum": ["constructor", "freeform"]}, "selection": {"$ref": "#/definitions/constructor.Selection"}}}
    },
    "securityDefinitions": {
        "TelegramInitData": {
            "description": "Type \"tma\" followed by a space and raw Telegram initData.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GiftOutfit API",
	Description:      "BFF мини-приложения Telegram для альбомов коллекционных подарков",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
