// Package livedash_sdk 直播数据看板 SDK
// @title Live Dashboard API
// @version 1.0
// @description 直播间遥测看板的 RESTful API：房间列表/快照、弹幕·礼物·PK 视图会话、搜索与后台管理
// @description
// @description ## 业务状态码说明
// @description | Code | 说明 |
// @description |------|------|
// @description | 0 | 成功 |
// @description | 10001 | 参数错误 |
// @description | 10002 | 视图会话不存在或已回收 |
// @description | 10004 | 后台密钥无效 |
// @description | 10005 | 权限不足 |
// @description | 20001 | 采集后端请求失败 |
// @description | 99999 | 内部错误 |
// @description
// @description ## 响应格式
// @description 所有接口统一返回格式：
// @description ```json
// @description {
// @description   "code": 0,
// @description   "msg": "success",
// @description   "data": {}
// @description }
// @description ```
//
// @termsOfService https://github.com/xwlin/livedash-sdk
//
// @contact.name API Support
// @contact.url https://github.com/xwlin/livedash-sdk/issues
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8090
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey AdminSecret
// @in header
// @name X-Admin-Secret
// @description 后台接口的共享密钥
package livedash_sdk
