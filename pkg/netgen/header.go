package netgen

// DefaultHeader 写在每个生成文件开头的注释块。
const DefaultHeader = `
! DO NOT EDIT THIS FILE!!!
!
! This file is automatically generated by netgen at compile-time.
!
! To modify the species carried by the network, edit the appropriate
! species definition file.

`
