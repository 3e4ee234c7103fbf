package sqlinline

const dogColumns = `id, name, photo_url, story, monthly_amount_usd, monthly_amount_idr, is_sponsored, sponsor_id, created_at`

const QListDogs = `--sql 140ed6cd-5da2-44b3-aa71-786a6a55fd46
select ` + dogColumns + `
from dogs
order by created_at asc;
`

const QSelectDogByID = `--sql f1003b64-5134-4c5e-bdbc-283b470a33c8
select ` + dogColumns + `
from dogs
where id = $1::uuid;
`

const QListDogsBySponsor = `--sql 696bd347-e48c-499a-91b0-3ce104e7748c
select ` + dogColumns + `
from dogs
where sponsor_id = $1::uuid
order by created_at asc;
`

const QInsertDog = `--sql 8cb7a598-3458-45fa-9e19-d5ba23bda4b3
insert into dogs(id, name, photo_url, story, monthly_amount_usd, monthly_amount_idr, is_sponsored, sponsor_id, created_at)
values (gen_random_uuid(), $1::text, nullif($2::text, ''), nullif($3::text, ''), $4::numeric, $5::numeric, false, null, now())
returning ` + dogColumns + `;
`

const QUpdateDog = `--sql 0f089086-2573-4755-b746-9feeb53040fc
update dogs
set name = coalesce($2::text, name),
    photo_url = case when $3::text is null then photo_url else nullif($3::text, '') end,
    story = case when $4::text is null then story else nullif($4::text, '') end,
    monthly_amount_usd = coalesce($5::numeric, monthly_amount_usd),
    monthly_amount_idr = coalesce($6::numeric, monthly_amount_idr),
    sponsor_id = case when $8::bool then null else coalesce($7::uuid, sponsor_id) end,
    is_sponsored = case when $8::bool then false else coalesce($7::uuid, sponsor_id) is not null end
where id = $1::uuid
returning ` + dogColumns + `;
`

const QDeleteDog = `--sql 1af121be-8ba9-4fd1-b218-274ccca50883
delete from dogs
where id = $1::uuid;
`

const QCountDogs = `--sql ceebc52e-08ea-4ab8-bea4-c530de1924d2
select count(*) from dogs;
`

const QCountSponsoredDogs = `--sql 32d9d943-af7e-4c5a-a26e-7f7da1b016d3
select count(*) from dogs where is_sponsored = true;
`
