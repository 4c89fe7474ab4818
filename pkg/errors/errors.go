package errors

import "errors"

// ErrProfileOrphaned 用户删除只完成了一半：角色行已删除但档案行删除失败。
// 两次删除之间没有事务保证，调用方据此错误可以定位残留的档案行。
var ErrProfileOrphaned = errors.New("角色已删除但档案删除失败，档案行已成为孤儿数据")
