package assets

const LogoText = `
   _  _
  / |/ /________
  | | __/ __/ __|
  | | |_| | | (__
  |_|\__|_|  \___|

  trillion row challenge dataset builder

`
